// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/domain-marketplace/internal/adapter"
	"github.com/MKhiriev/domain-marketplace/internal/client"
	"github.com/MKhiriev/domain-marketplace/internal/config"
	"github.com/MKhiriev/domain-marketplace/internal/logger"
	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/spf13/cobra"
)

// clientFactory builds the client used by every command once configuration
// is resolved.
type clientFactory func(cfg *config.ClientConfig, log *logger.Logger) (client.Client, error)

func newClient(cfg *config.ClientConfig, log *logger.Logger) (client.Client, error) {
	api, err := adapter.NewHTTPMarketplaceAPI(*cfg, log)
	if err != nil {
		return nil, err
	}
	return client.NewApp(api, log), nil
}

// cli is the state shared by all commands of one invocation.
type cli struct {
	build   models.AppBuildInfo
	factory clientFactory

	flags   config.ClientConfig
	verbose bool

	client client.Client
	logger *logger.Logger
}

func newRootCmd(build models.AppBuildInfo, factory clientFactory) *cobra.Command {
	c := &cli{build: build, factory: factory}

	root := &cobra.Command{
		Use:   "marketctl",
		Short: "Operator CLI for the domain marketplace",
		Long: `marketctl talks to a running marketplace server over its REST API.

Example usage:
  marketctl login --email admin@example.com --password ...
  marketctl seed categories --token <access token>
  marketctl seed domains --file domains.json --token <access token>
  marketctl domains list --status available --min-price 100
  marketctl domains availability 42`,
		SilenceUsage:      true,
		PersistentPreRunE: c.connect,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.flags.ServerURL, "server", "", "server URL (env MARKETCTL_SERVER_URL, default http://localhost:8080)")
	flags.DurationVar(&c.flags.RequestTimeout, "timeout", 0, "request timeout (env MARKETCTL_REQUEST_TIMEOUT, default 15s)")
	flags.StringVar(&c.flags.Token, "token", "", "access token for authenticated calls (env MARKETCTL_TOKEN)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log every API call to stderr")

	root.AddCommand(
		newVersionCmd(c),
		newLoginCmd(c),
		newSeedCmd(c),
		newDomainsCmd(c),
	)

	return root
}

func (c *cli) connect(*cobra.Command, []string) error {
	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	c.logger = logger.Nop()
	if c.verbose {
		c.logger = logger.NewStderrLogger("marketctl")
	}

	c.client, err = c.factory(cfg, c.logger)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}
