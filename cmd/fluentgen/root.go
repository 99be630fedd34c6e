package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/reoring/fluentval/internal/logger"
)

const envPrefix = "FLUENTGEN"

type app struct {
	v       *viper.Viper
	cfgFile string
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "fluentgen",
		Short: "Generate property path constants for fluentval",
		Long: `fluentgen reads the struct declarations of a Go package and writes one
constant per property path, using the same naming rules as fluentval
(fluentval:"name=..." tag, then json tag, then field name).`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			a.log = logger.New(
				a.v.GetString("log-level"),
				logger.ParseFormat(a.v.GetString("log-format")),
				cmd.ErrOrStderr(),
			)
			return nil
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./.fluentgen.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console, json")
	_ = a.v.BindPFlag("log-level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log-format", pf.Lookup("log-format"))

	root.AddCommand(newGenerateCmd(a))
	return root
}

// initConfig loads configuration from the config file and FLUENTGEN_* variables.
// A missing default config file is not an error.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		return a.v.ReadInConfig()
	}
	if _, err := os.Stat(".fluentgen.yaml"); err != nil {
		return nil
	}
	a.v.SetConfigFile(".fluentgen.yaml")
	return a.v.ReadInConfig()
}
