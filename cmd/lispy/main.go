// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

// Command lispy is the driver: a cobra root command that either evaluates
// the files named on its command line or, with none given, starts an
// interactive readline-backed REPL (§6.4).
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lispyrun/lispy/internal/config"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogJSON   bool
	flagNoPrelude bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lispy [files...]",
		Short:   "lispy is a small Lisp-family interpreter",
		Version: "0.1.0",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			switch {
			case flagConfig != "":
				loaded, err := config.Load(flagConfig)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				cfg = loaded
			default:
				if path := config.DefaultPath(); path != "" {
					if loaded, err := config.Load(path); err == nil {
						cfg = loaded
					} else if !os.IsNotExist(err) {
						return fmt.Errorf("loading config: %w", err)
					}
				}
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if flagLogJSON {
				cfg.LogJSON = true
			}
			logger := newLogger(cfg)
			return run(cfg, logger, args, flagNoPrelude)
		},
	}
	cmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML configuration file")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flagLogJSON, "log-json", false, "log in JSON instead of text")
	cmd.Flags().BoolVar(&flagNoPrelude, "no-prelude", false, "skip loading the standard prelude")
	return cmd
}

func newLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()
	if cfg.LogJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}
