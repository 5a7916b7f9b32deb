// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethersphere/aurakit"
	"github.com/ethersphere/aurakit/pkg/api"
	"github.com/ethersphere/aurakit/pkg/metrics"
)

func (c *command) initStartCmd() {
	cmd := &cobra.Command{
		Use:     "start",
		Short:   "Start the HTTP API",
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) > 0 {
				return cmd.Help()
			}

			logger := c.logger
			logger.Infof("version: %v", aurakit.Version)

			registry := metrics.NewRegistry()
			apiService := api.New(api.Options{
				Logger:          logger,
				MetricsRegistry: registry,
			})
			registry.MustRegister(apiService.Metrics()...)
			if l, ok := logger.(metrics.Collector); ok {
				registry.MustRegister(l.Metrics()...)
			}

			apiListener, err := net.Listen("tcp", c.config.GetString(optionNameAPIAddr))
			if err != nil {
				return fmt.Errorf("api listener: %w", err)
			}
			apiServer := &http.Server{
				Handler:           apiService,
				ReadHeaderTimeout: 10 * time.Second,
				ErrorLog:          log.New(logger.WriterLevel(logrus.ErrorLevel), "api server: ", 0),
			}

			go func() {
				logger.Infof("api address: %s", apiListener.Addr())

				if err := apiServer.Serve(apiListener); err != nil && err != http.ErrServerClosed {
					logger.Errorf("api server: %v", err)
				}
			}()

			// Wait for termination or interrupt signals.
			// We want to clean up things at the end.
			interruptChannel := make(chan os.Signal, 1)
			signal.Notify(interruptChannel, syscall.SIGINT, syscall.SIGTERM)

			// Block main goroutine until it is interrupted
			sig := <-interruptChannel

			logger.Debugf("received signal: %v", sig)
			logger.Info("shutting down")

			// Shutdown
			done := make(chan struct{})
			go func() {
				defer close(done)

				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()

				if err := apiServer.Shutdown(ctx); err != nil {
					logger.Errorf("api server shutdown: %v", err)
				}
			}()

			// If shutdown function is blocking too long,
			// allow process termination by receiving another signal.
			select {
			case sig := <-interruptChannel:
				logger.Debugf("received signal: %v", sig)
			case <-done:
			}

			return nil
		},
	}

	cmd.Flags().String(optionNameAPIAddr, ":1733", "HTTP API listen address")

	c.root.AddCommand(cmd)
}
