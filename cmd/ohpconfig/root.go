// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ohp/ohp-config/internal/app"
	"github.com/ohp/ohp-config/internal/config"
	"github.com/ohp/ohp-config/internal/encoding"
	"github.com/ohp/ohp-config/internal/logger"
	"github.com/ohp/ohp-config/internal/service"
	"github.com/ohp/ohp-config/internal/utils"
	"github.com/ohp/ohp-config/models"
	"github.com/spf13/cobra"
)

var errNotBootstrapped = errors.New("command ran without bootstrap")

// cli carries the state shared by the commands of one invocation.
type cli struct {
	root      *cobra.Command
	flags     *config.Flags
	buildInfo models.AppBuildInfo

	cfg *config.StructuredConfig
	// baseLog owns the log file.
	baseLog *logger.Logger
	app     *app.App
}

// documentFunc selects the document a command prints.
type documentFunc func(s service.ConfigurationService) any

func newCLI(info models.AppBuildInfo) *cli {
	c := &cli{buildInfo: info}
	c.root = c.newRootCmd()

	return c
}

// execute runs the command line and releases the log file afterwards.
func (c *cli) execute(ctx context.Context) error {
	err := c.root.ExecuteContext(ctx)
	if c.baseLog != nil {
		err = errors.Join(err, c.baseLog.Close())
	}

	return err
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ohpconfig",
		Short: "Generate the runtime configuration of the OWASP Honeypot",
		Long: "ohpconfig resolves the real machine address, derives the protocol table " +
			"and prints the API, network, docker and user configuration documents.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.bootstrap,
		RunE: c.printDocument(func(s service.ConfigurationService) any {
			return s.Configuration()
		}),
	}
	c.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.documentCmd("api", "Print the API server configuration", func(s service.ConfigurationService) any {
			return s.APIConfiguration()
		}),
		c.documentCmd("network", "Print the network capture configuration", func(s service.ConfigurationService) any {
			return s.NetworkConfiguration()
		}),
		c.documentCmd("docker", "Print the container lifecycle configuration", func(s service.ConfigurationService) any {
			return s.DockerConfiguration()
		}),
		c.documentCmd("user", "Print the user configuration", func(s service.ConfigurationService) any {
			return s.UserConfiguration()
		}),
		c.documentCmd("all", "Print all configuration documents", func(s service.ConfigurationService) any {
			return s.Configuration()
		}),
		c.protocolsCmd(),
		c.versionCmd(),
	)

	return root
}

// bootstrap loads the settings, sets up logging and computes the
// process-wide values once per invocation.
func (c *cli) bootstrap(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	baseLog, err := logger.NewRotatingLogger("ohpconfig", cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	c.baseLog = baseLog

	ctx := context.WithValue(cmd.Context(), utils.RunIDCtxKey, utils.NewRunIDGenerator().Generate())
	log := runLogger(ctx, baseLog)
	ctx = log.WithContext(ctx)
	cmd.SetContext(ctx)

	log.Debug().Any("config", cfg).Str("command", cmd.Name()).Msg("received configs")

	application, err := app.New(ctx, cfg,
		app.NewHostResolver(cfg.Resolver, log),
		utils.NewRandomTokenGenerator(utils.DefaultTokenLength),
		log,
	)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.app = application

	return nil
}

// runLogger tags log with the run id carried by ctx.
func runLogger(ctx context.Context, log *logger.Logger) *logger.Logger {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		return log
	}

	return log.WithStr("run_id", runID)
}

func (c *cli) documentCmd(use, short string, document documentFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE:  c.printDocument(document),
	}
}

func (c *cli) printDocument(document documentFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if c.app == nil {
			return errNotBootstrapped
		}

		return c.encode(cmd, document(c.app.Services.ConfigurationService))
	}
}

func (c *cli) encode(cmd *cobra.Command, v any) error {
	if err := encoding.Encode(cmd.OutOrStdout(), c.cfg.Output.Format, v); err != nil {
		return fmt.Errorf("error writing %s document: %w", cmd.Name(), err)
	}

	logger.FromContext(cmd.Context()).Debug().Str("command", cmd.Name()).Msg("document written")

	return nil
}
