package command

import "context"

// Runner implementations execute the query script and return its standard
// output.
//
// A failure to produce output is returned as a *Failure.
type Runner interface {
	Run(ctx context.Context, args []string) (string, error)
}
