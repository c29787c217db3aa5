// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, c.build)

			serverVersion, err := c.client.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching server version: %w", err)
			}
			if serverVersion == "" {
				serverVersion = "N/A"
			}
			fmt.Fprintf(out, "Server version: %s\n", serverVersion)

			return nil
		},
	}
}
