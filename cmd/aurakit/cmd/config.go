// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

func (c *command) initConfigurateOptionsCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print configuration options in the config file format",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.bindAllFlags(c.root); err != nil {
				return err
			}
			settings := c.config.AllSettings()
			// private keys are never printed
			delete(settings, optionNameKey)

			b, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	})
}

func (c *command) bindAllFlags(cmd *cobra.Command) error {
	if err := c.config.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	for _, sub := range cmd.Commands() {
		if err := c.bindAllFlags(sub); err != nil {
			return err
		}
	}
	return nil
}
