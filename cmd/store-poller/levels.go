package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bigkevmcd/store-polling-operator/pkg/store"
)

func newBlessingLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blessing-levels",
		Short: "List the blessing levels, lowest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range store.BlessingLevels {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}
