/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPrefsCmd(flags *globalFlags) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the persisted preferences",
	}

	prefsCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()
			return flags.print(cmd.OutOrStdout(), client.Preferences())
		},
	})

	prefsCmd.AddCommand(&cobra.Command{
		Use:   "set KEY=VALUE...",
		Short: "Update preferences and persist them",
		Long:  "Update preferences and persist them. Values are parsed as JSON when possible, otherwise kept as strings.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAssignments(args)
			if err != nil {
				return err
			}

			client, err := flags.newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			client.UpdatePreferences(values)
			return flags.print(cmd.OutOrStdout(), client.Preferences())
		},
	})
	prefsCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the default preferences and delete the persisted ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.ResetPreferences(cmd.Context()); err != nil {
				return err
			}
			return flags.print(cmd.OutOrStdout(), client.Preferences())
		},
	})
	return prefsCmd
}

func parseAssignments(args []string) (map[string]any, error) {
	values := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected KEY=VALUE, got %q", arg)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		values[key] = v
	}
	return values, nil
}
