/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/coredata/models"
	"github.com/suparena/coredata/registry"
)

func newLoadCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "load KIND...",
		Short: "Load the entities of each KIND and print them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			loaded := map[string][]models.EntityDefinition{}
			for _, kind := range args {
				if err := client.LoadKind(cmd.Context(), kind); err != nil {
					return err
				}
				loaded[kind] = client.EntitiesByKind(kind)
			}
			return flags.print(cmd.OutOrStdout(), loaded)
		},
	}
}

func newMethodNameCmd(flags *globalFlags) *cobra.Command {
	var (
		prefix string
		plural bool
	)
	cmd := &cobra.Command{
		Use:   "method-name KIND NAME",
		Short: "Print the accessor name of an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			kind, name := args[0], args[1]
			if kind != models.KindRoot {
				if err := client.LoadKind(cmd.Context(), kind); err != nil {
					return err
				}
			}
			method, err := client.MethodName(kind, name, prefix, plural)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), method)
			return err
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", registry.DefaultMethodPrefix, "Method name prefix")
	cmd.Flags().BoolVar(&plural, "plural", false, "Use the plural form of the entity name")
	return cmd
}
