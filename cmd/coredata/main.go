/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command coredata loads entity kinds and manages persisted preferences
// against a REST API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/suparena/coredata"
	"github.com/suparena/coredata/config"
	"github.com/suparena/coredata/internal/logging"
)

type globalFlags struct {
	configPath string
	apiURL     string
	output     string
	verbose    int
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "coredata",
		Short:         "Entity loading and persisted preferences for a REST API",
		Version:       coredata.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(flags.verbose)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", os.Getenv("COREDATA_CONFIG"), "Configuration file")
	pf.StringVar(&flags.apiURL, "api-url", "", "REST API root, overrides the configuration")
	pf.StringVarP(&flags.output, "output", "o", "yaml", "Output format: json or yaml")
	pf.IntVarP(&flags.verbose, "verbose", "v", 0, "Verbosity for logging")

	rootCmd.AddCommand(
		newLoadCmd(flags),
		newMethodNameCmd(flags),
		newPrefsCmd(flags),
		newServeFakeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// newClient builds a client from the configuration named by the flags.
func (f *globalFlags) newClient(ctx context.Context) (*coredata.Client, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.apiURL != "" {
		cfg.API.URL = f.apiURL
	}
	return coredata.New(ctx, cfg, coredata.WithLogger(logging.Log()))
}

func (f *globalFlags) print(w io.Writer, v any) error {
	switch f.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", f.output)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
