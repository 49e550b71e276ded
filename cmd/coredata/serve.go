/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/suparena/coredata/internal/logging"
	"github.com/suparena/coredata/internal/restfake"
)

func newServeFakeCmd() *cobra.Command {
	var (
		addr     string
		fixtures string
	)
	cmd := &cobra.Command{
		Use:   "serve-fake",
		Short: "Serve a fake REST API for local runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := restfake.DefaultFixtures()
			if fixtures != "" {
				var err error
				if f, err = restfake.LoadFixtures(fixtures); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			server := &http.Server{Addr: addr, Handler: restfake.New(f).Handler()}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdownCtx)
			}()

			logging.Log().Info("Serving fake REST API", "addr", addr, "postTypes", len(f.PostTypes))
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML fixtures file, defaults to a stock install")
	return cmd
}
