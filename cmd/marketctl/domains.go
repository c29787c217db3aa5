// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/spf13/cobra"
)

func newDomainsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Browse listed domains",
	}

	cmd.AddCommand(newDomainsListCmd(c), newDomainsAvailabilityCmd(c))
	return cmd
}

type listFlags struct {
	status      string
	minPrice    float64
	maxPrice    float64
	category    string
	listingType string
	search      string
	page        int
	limit       int
}

func newDomainsListCmd(c *cli) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := f.toFilter(cmd)
			if err != nil {
				return err
			}

			list, err := c.client.ListDomains(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("listing domains: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, domainsTable(list.Domains))
			if list.Paginated() {
				fmt.Fprintf(out, "page %d of %d, %d domains in total\n", list.Page, *list.TotalPages, list.Total)
				return nil
			}
			fmt.Fprintf(out, "%d domains\n", list.Total)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.status, "status", "", "available, taken, reserved or pending")
	flags.Float64Var(&f.minPrice, "min-price", 0, "lowest price (0 is a valid bound)")
	flags.Float64Var(&f.maxPrice, "max-price", 0, "highest price (0 is a valid bound)")
	flags.StringVar(&f.category, "category", "", "category title")
	flags.StringVar(&f.listingType, "listing-type", "", "regular, premium or featured")
	flags.StringVar(&f.search, "search", "", "substring of the name or description")
	flags.IntVar(&f.page, "page", 0, "page number, paginates together with --limit")
	flags.IntVar(&f.limit, "limit", 0, "page size, paginates together with --page")

	return cmd
}

func (f listFlags) toFilter(cmd *cobra.Command) (models.DomainFilter, error) {
	filter := models.DomainFilter{
		Category: f.category,
		Search:   f.search,
		Page:     f.page,
		Limit:    f.limit,
	}

	if f.status != "" {
		status := models.DomainStatus(f.status)
		if !status.Valid() {
			return filter, fmt.Errorf("unknown status %q", f.status)
		}
		filter.Status = &status
	}
	if f.listingType != "" {
		listing := models.ListingType(f.listingType)
		if !listing.Valid() {
			return filter, fmt.Errorf("unknown listing type %q", f.listingType)
		}
		filter.ListingType = &listing
	}

	flags := cmd.Flags()
	if flags.Changed("min-price") {
		filter.MinPrice = &f.minPrice
	}
	if flags.Changed("max-price") {
		filter.MaxPrice = &f.maxPrice
	}
	filter.Paginated = flags.Changed("page") && flags.Changed("limit")

	return filter, nil
}

func newDomainsAvailabilityCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "availability <id>",
		Short: "Look up a listed domain in the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid domain id %q", args[0])
			}

			availability, err := c.client.CheckAvailability(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("checking availability: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s (checked %s)\n",
				availability.Domain,
				statusStyle(availability.Status).Render(string(availability.Status)),
				availability.CheckedAt.Format("2006-01-02 15:04:05 MST"),
			)
			return nil
		},
	}
}
