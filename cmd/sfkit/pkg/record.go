// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/sfkit/sfkit/pkg/salesforce"
	"github.com/sfkit/sfkit/pkg/schema"
)

// loadRegistry loads the schema for one object, preferring the definition
// cache directory and falling back to a live describe.
func loadRegistry(ctx context.Context, c *cli.Context, cfg *ConfigFile, client *salesforce.Client, object string) (*schema.Registry, error) {
	reg := schema.NewRegistry()

	cacheDir := firstNonEmpty(c.String("cache"), cfg.API.Cache)
	if cacheDir != "" {
		if err := reg.LoadFromCache(cacheDir, []string{object}); err != nil {
			return nil, err
		}
		if _, ok := reg.Fields(object); ok {
			return reg, nil
		}
	}

	if err := reg.LoadFromAPI(ctx, client, []string{object}, ""); err != nil {
		return nil, err
	}
	return reg, nil
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch a record by object and Id",
		ArgsUsage: "OBJECT ID",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "resolve",
				Usage: "resolve these lookup fields into nested records (repeatable; use 'all' for every lookup)",
			},
		},
		Action: func(c *cli.Context) error {
			object, id := c.Args().Get(0), c.Args().Get(1)
			if object == "" || id == "" {
				return fmt.Errorf("usage: sfkit get OBJECT ID")
			}

			cfg, err := loadConfigFrom(c)
			if err != nil {
				return err
			}
			client, err := newAPIClient(c, cfg)
			if err != nil {
				return err
			}
			reg, err := loadRegistry(c.Context, c, cfg, client, object)
			if err != nil {
				return err
			}

			record, err := reg.Get(c.Context, client, object, id)
			if err != nil {
				return err
			}

			if resolve := c.StringSlice("resolve"); len(resolve) > 0 {
				only := resolve
				if len(resolve) == 1 && resolve[0] == "all" {
					only = nil
				}
				record = reg.ResolveReferences(c.Context, client, record, object, only)
			}

			return FormatRecords(os.Stdout, []salesforce.Record{record}, c.String("output"))
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Pretty-print a record with field labels from the schema",
		ArgsUsage: "OBJECT ID",
		Action: func(c *cli.Context) error {
			object, id := c.Args().Get(0), c.Args().Get(1)
			if object == "" || id == "" {
				return fmt.Errorf("usage: sfkit show OBJECT ID")
			}

			cfg, err := loadConfigFrom(c)
			if err != nil {
				return err
			}
			client, err := newAPIClient(c, cfg)
			if err != nil {
				return err
			}
			reg, err := loadRegistry(c.Context, c, cfg, client, object)
			if err != nil {
				return err
			}

			record, err := reg.Get(c.Context, client, object, id)
			if err != nil {
				return err
			}
			return reg.PrettyPrint(os.Stdout, record, object, 0)
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a record from JSON field data",
		ArgsUsage: "OBJECT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data",
				Usage: "field data as a JSON object",
			},
			&cli.StringFlag{
				Name:  "data-file",
				Usage: "read field data from a JSON file ('-' for stdin)",
			},
		},
		Action: func(c *cli.Context) error {
			object := c.Args().First()
			if object == "" {
				return fmt.Errorf("usage: sfkit create OBJECT --data '{...}'")
			}

			body, err := readBodyInput(c.String("data"), c.String("data-file"))
			if err != nil {
				return err
			}
			if body == nil {
				return fmt.Errorf("field data is required: pass --data or --data-file")
			}

			var fields map[string]any
			if err := json.Unmarshal(body, &fields); err != nil {
				return fmt.Errorf("parsing field data: %w", err)
			}

			cfg, err := loadConfigFrom(c)
			if err != nil {
				return err
			}
			client, err := newAPIClient(c, cfg)
			if err != nil {
				return err
			}

			result, err := client.CreateRecord(c.Context, object, fields)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "%s created with Id: %s\n", object, result.ID)
			return printJSON(os.Stdout, result)
		},
	}
}

func uploadCommand() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Usage:     "Attach a local file to a record as a ContentVersion",
		ArgsUsage: "RECORD_ID FILE",
		Action: func(c *cli.Context) error {
			recordID, path := c.Args().Get(0), c.Args().Get(1)
			if recordID == "" || path == "" {
				return fmt.Errorf("usage: sfkit upload RECORD_ID FILE")
			}

			cfg, err := loadConfigFrom(c)
			if err != nil {
				return err
			}
			client, err := newAPIClient(c, cfg)
			if err != nil {
				return err
			}

			result, err := client.UploadFile(c.Context, recordID, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "File %s uploaded to record %s\n", path, recordID)
			return printJSON(os.Stdout, result)
		},
	}
}

// readBodyInput reads request data from --data or --data-file.
// Use "--data-file -" to read from stdin.
func readBodyInput(data, dataFile string) ([]byte, error) {
	if data != "" && dataFile != "" {
		return nil, fmt.Errorf("specify either --data or --data-file, not both")
	}
	if data != "" {
		return []byte(data), nil
	}
	if dataFile != "" {
		if dataFile == "-" {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			return b, nil
		}
		b, err := os.ReadFile(dataFile)
		if err != nil {
			return nil, fmt.Errorf("reading data file: %w", err)
		}
		return b, nil
	}
	return nil, nil
}
