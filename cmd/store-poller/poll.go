package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bigkevmcd/store-polling-operator/pkg/baseline"
	"github.com/bigkevmcd/store-polling-operator/pkg/command"
	"github.com/bigkevmcd/store-polling-operator/pkg/config"
	"github.com/bigkevmcd/store-polling-operator/pkg/polling"
	"github.com/bigkevmcd/store-polling-operator/pkg/revision"
	"github.com/bigkevmcd/store-polling-operator/pkg/store"
)

func newPollCmd(opts *rootOptions) *cobra.Command {
	var pundles []string
	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Poll a Store repository once and report whether a build is needed",
		Long: `Poll runs the Store query script and compares the result with the
baseline file. When a build is needed the baseline file is replaced with the
current state of the repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			cfg, err := config.Load(opts.v, opts.cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pundle") {
				cfg.Repository.Pundles = []store.PundleSpec{}
				for _, p := range pundles {
					cfg.Repository.Pundles = append(cfg.Repository.Pundles, store.PundleSpec{Name: p})
				}
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			files := baseline.NewFileStore(cfg.BaselineFile)
			previous, err := files.Load()
			if err != nil {
				return err
			}
			runner := command.NewExecRunner(logger,
				command.WithTimeout(cfg.Timeout),
				command.WithWorkDir(cfg.WorkDir))
			poller := polling.New(runner, logger)

			result, err := poller.Poll(cmd.Context(), cfg.Repository, previous, cfg.Script)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), result)
			if !result.BuildRequired() {
				return nil
			}

			current := result.Current
			if result.Change == polling.BuildNow {
				current, err = poller.Snapshot(cmd.Context(), cfg.Repository, cfg.Script)
				if err != nil {
					logger.Error(err, "Recording the baseline failed, starting from an empty baseline")
					current = revision.Parse("")
				}
			}
			return files.Save(current)
		},
	}
	cmd.Flags().String("baseline-file", "", "file the baseline is kept in")
	cmd.Flags().String("repository", "", "Store repository to query")
	cmd.Flags().StringSliceVar(&pundles, "pundle", nil, "pundle to query, can be repeated")
	cmd.Flags().String("version-regex", "", "pattern the versions must match")
	cmd.Flags().String("blessed-at-least", "", "minimum blessing level")
	bindFlags(opts.v, cmd.Flags(), map[string]string{
		"baseline-file":    "baselineFile",
		"repository":       "repository.repositoryName",
		"version-regex":    "repository.versionRegex",
		"blessed-at-least": "repository.minimumBlessingLevel",
	})
	return cmd
}

func report(w io.Writer, r polling.Result) {
	fmt.Fprintln(w, r.Change)
	for _, c := range r.Changes() {
		fmt.Fprintln(w, c)
	}
}
