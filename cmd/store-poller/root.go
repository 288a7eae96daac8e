package main

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bigkevmcd/store-polling-operator/pkg/config"
)

type rootOptions struct {
	cfgFile string
	debug   bool
	v       *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: config.New()}
	cmd := &cobra.Command{
		Use:           "store-poller",
		Short:         "Detect new content in VisualWorks Store repositories",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable development logging")
	cmd.PersistentFlags().String("script", "", "path to the Store query executable")
	cmd.PersistentFlags().Duration("timeout", 0, "how long the query may run before it's killed")
	cmd.PersistentFlags().String("work-dir", "", "directory to run the query in")
	bindFlags(opts.v, cmd.PersistentFlags(), map[string]string{
		"script":   "script",
		"timeout":  "timeout",
		"work-dir": "workDir",
	})

	cmd.AddCommand(newPollCmd(opts))
	cmd.AddCommand(newOperatorCmd(opts))
	cmd.AddCommand(newBlessingLevelsCmd())
	return cmd
}

func (o *rootOptions) logger() (logr.Logger, error) {
	var zapLog *zap.Logger
	var err error
	if o.debug {
		zapLog, err = zap.NewDevelopment()
	} else {
		zapLog, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return zapr.NewLogger(zapLog), nil
}

// bindFlags binds each named flag to its configuration key, so that a flag
// given on the command line overrides the config file and environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}
