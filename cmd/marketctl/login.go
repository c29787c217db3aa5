// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	var credentials models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print an access token",
		Long: `Log in with a local account and print the token pair.

Pass the access token to other commands with --token or MARKETCTL_TOKEN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			login, err := c.client.Login(cmd.Context(), credentials)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged in as %s (%s)\n", login.User.Email, login.User.Role)
			fmt.Fprintf(out, "Access token:  %s\n", login.Token)
			fmt.Fprintf(out, "Refresh token: %s\n", login.RefreshToken)

			return nil
		},
	}

	cmd.Flags().StringVar(&credentials.Email, "email", "", "account email")
	cmd.Flags().StringVar(&credentials.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
