// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ethersphere/aurakit/pkg/logging"
)

const (
	optionNameVerbosity = "verbosity"
	optionNameAPIAddr   = "api-addr"
	optionNameRaw       = "raw"
	optionNameStep      = "step"
	optionNameSignature = "signature"
	optionNameKey       = "key"
	optionNameUnchecked = "unchecked"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	logger  logging.Logger
	cfgFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "aurakit",
			Short:         "Authority round proofs and complete merkle roots",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				if err := c.initConfig(); err != nil {
					return err
				}
				logger, err := newLogger(cmd.ErrOrStderr(), c.config.GetString(optionNameVerbosity))
				if err != nil {
					return err
				}
				c.logger = logger
				return nil
			},
		},
	}

	for _, o := range opts {
		o(c)
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()

	c.initMerkleCmd()
	c.initProofCmd()
	c.initStartCmd()
	c.initVersionCmd()
	c.initConfigurateOptionsCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", c.cfgFile, "config file (default is $HOME/.aurakit.yaml)")
	globalFlags.String(optionNameVerbosity, "info", "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace")
}

func (c *command) initConfig() (err error) {
	config := viper.New()
	configName := ".aurakit"
	if c.cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".aurakit" (without extension).
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}

	// Environment
	config.SetEnvPrefix("aurakit")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if c.homeDir != "" && c.cfgFile == "" {
		c.cfgFile = filepath.Join(c.homeDir, configName+".yaml")
	}

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}

	if err := config.BindPFlags(c.root.PersistentFlags()); err != nil {
		return err
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

// bindFlags makes the command flags available through the config, so
// that they can also be set from the config file or the environment.
func (c *command) bindFlags(cmd *cobra.Command, _ []string) error {
	return c.config.BindPFlags(cmd.Flags())
}

func newLogger(w io.Writer, verbosity string) (logging.Logger, error) {
	var logger logging.Logger
	switch verbosity {
	case "0", "silent":
		logger = logging.New(io.Discard, 0)
	case "1", "error":
		logger = logging.New(w, logrus.ErrorLevel)
	case "2", "warn":
		logger = logging.New(w, logrus.WarnLevel)
	case "3", "info":
		logger = logging.New(w, logrus.InfoLevel)
	case "4", "debug":
		logger = logging.New(w, logrus.DebugLevel)
	case "5", "trace":
		logger = logging.New(w, logrus.TraceLevel)
	default:
		return nil, fmt.Errorf("unknown verbosity level %q", verbosity)
	}
	return logger, nil
}
