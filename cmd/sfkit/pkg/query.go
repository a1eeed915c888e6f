// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Run a SOQL query and print the records",
		ArgsUsage: "SOQL",
		Action: func(c *cli.Context) error {
			soql := c.Args().First()
			if soql == "" {
				return fmt.Errorf("a SOQL query is required, e.g. sfkit query \"SELECT Id, Name FROM Account\"")
			}

			cfg, err := loadConfigFrom(c)
			if err != nil {
				return err
			}
			client, err := newAPIClient(c, cfg)
			if err != nil {
				return err
			}

			records, err := client.QueryAll(c.Context, soql)
			if err != nil {
				return err
			}
			return FormatRecords(os.Stdout, records, c.String("output"))
		},
	}
}
