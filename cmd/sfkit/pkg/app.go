// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	cli "github.com/urfave/cli/v2"

	"github.com/sfkit/sfkit/pkg/salesforce"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

// NewApp builds the sfkit cli.App. The root action performs the metadata
// export; everything else lives in subcommands.
func NewApp() *cli.App {
	// -v belongs to --verbose here; keep --version on -V.
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}

	app := &cli.App{
		Name:                 "sfkit",
		Usage:                "Export Salesforce object metadata to YAML definition files",
		Version:              Version,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "object",
				Aliases: []string{"o"},
				Usage:   "object API name to include (repeatable)",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "output directory for object definition files (required)",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "export all objects",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to config file",
				EnvVars: []string{"SFKIT_CONFIG"},
				Value:   ConfigPath(),
			},
			&cli.StringFlag{
				Name:    "instance-url",
				Usage:   "Salesforce instance URL",
				EnvVars: []string{"SFKIT_INSTANCE_URL", "SALESFORCE_INSTANCE_URL"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "API bearer token",
				EnvVars: []string{"SFKIT_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "token-url",
				Usage:   "OAuth token endpoint URL",
				EnvVars: []string{"SFKIT_TOKEN_URL", salesforce.EnvTokenURL},
			},
			&cli.StringFlag{
				Name:    "client-id",
				Usage:   "Connected app consumer key",
				EnvVars: []string{"SFKIT_CLIENT_ID", salesforce.EnvClientID},
			},
			&cli.StringFlag{
				Name:    "client-secret",
				Usage:   "Connected app consumer secret",
				EnvVars: []string{"SFKIT_CLIENT_SECRET", salesforce.EnvClientSecret},
			},
			&cli.StringFlag{
				Name:    "api-version",
				Usage:   "REST API version",
				EnvVars: []string{"SFKIT_API_VERSION"},
				Value:   salesforce.DefaultAPIVersion,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: json, yaml, table",
				Value: "json",
			},
			&cli.StringFlag{
				Name:    "cache",
				Usage:   "Directory of exported definition files to use as a schema cache",
				EnvVars: []string{"SFKIT_CACHE"},
			},
		},
		Before: func(c *cli.Context) error {
			setupLogging(c.Bool("verbose"))
			// Pick up connected-app credentials from a local .env file,
			// without overriding the real environment.
			_ = godotenv.Load()
			return nil
		},
		Action: runExport,
		Commands: []*cli.Command{
			LoginCommand(),
			queryCommand(),
			getCommand(),
			showCommand(),
			createCommand(),
			uploadCommand(),
			initCommand(),
			completionCommand(),
		},
	}

	return app
}

// setupLogging configures the process-wide zerolog logger. Verbose elevates
// the global level to debug.
func setupLogging(verbose bool) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// loadConfigFrom loads the config file the --config flag points at.
func loadConfigFrom(c *cli.Context) (*ConfigFile, error) {
	return LoadConfigFromPath(c.String("config"))
}

// newAPIClient resolves auth and instance settings and builds a REST client.
func newAPIClient(c *cli.Context, cfg *ConfigFile) (*salesforce.Client, error) {
	token, instanceURL, err := ResolveToken(c.Context, c, cfg)
	if err != nil {
		return nil, err
	}

	if u := c.String("instance-url"); u != "" {
		instanceURL = u
	}
	if instanceURL == "" {
		return nil, fmt.Errorf("instance URL is unknown: run 'sfkit login' or pass --instance-url")
	}

	version := c.String("api-version")
	if version == salesforce.DefaultAPIVersion && cfg.API.Version != "" {
		version = cfg.API.Version
	}

	return salesforce.NewClient(instanceURL, token, version), nil
}

// initCommand writes a sample config file to ~/.sfkit/config.yaml.
func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a sample config file at ~/.sfkit/config.yaml",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite existing config file",
			},
		},
		Action: func(c *cli.Context) error {
			cfgPath := c.String("config")
			if cfgPath == "" {
				cfgPath = ConfigPath()
			}

			if !c.Bool("force") {
				if _, err := os.Stat(cfgPath); err == nil {
					return fmt.Errorf("config already exists at %s (use --force to overwrite)", cfgPath)
				}
			}

			if err := os.MkdirAll(ConfigDir(), 0700); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := os.WriteFile(cfgPath, []byte(sampleConfigContent), 0600); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Printf("Config written to %s\n", cfgPath)
			return nil
		},
	}
}
