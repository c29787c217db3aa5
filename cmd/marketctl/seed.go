// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/domain-marketplace/internal/client"
	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/spf13/cobra"
)

func newSeedCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate a marketplace with starter data",
	}

	cmd.AddCommand(newSeedCategoriesCmd(c), newSeedDomainsCmd(c))
	return cmd
}

func newSeedCategoriesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Create the default categories (needs an admin or moderator token)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.client.SeedCategories(cmd.Context())
			printSeedReport(cmd.OutOrStdout(), "categories", report)
			return err
		},
	}
}

func newSeedDomainsCmd(c *cli) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "domains",
		Short: "Create domains from a JSON file, or the default example domain",
		Long: `Create domains through the atomic domain+category endpoint.

Without --file the single example listing example-domain.com (price 1000,
category "Default Domains") is created. With --file the document must look
like {"domains": [{"name": "...", "price": 100, "category_name": "..."}]}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs := []models.DomainInput{client.DefaultDomain()}
			if file != "" {
				var err error
				if inputs, err = loadDomainsFile(c.client, file); err != nil {
					return err
				}
			}

			report, err := c.client.SeedDomains(cmd.Context(), inputs)
			printSeedReport(cmd.OutOrStdout(), "domains", report)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON document with domains to create")
	return cmd
}

func loadDomainsFile(cl client.Client, path string) ([]models.DomainInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening domains file: %w", err)
	}
	defer f.Close()

	return cl.LoadDomains(f)
}

func printSeedReport(w io.Writer, what string, report client.SeedReport) {
	for _, name := range report.Created {
		fmt.Fprintln(w, createdStyle.Render("created")+" "+name)
	}
	for _, name := range report.Skipped {
		fmt.Fprintln(w, skippedStyle.Render("exists ")+" "+name)
	}
	fmt.Fprintf(w, "%s: %d created, %d already present\n", what, len(report.Created), len(report.Skipped))
}
