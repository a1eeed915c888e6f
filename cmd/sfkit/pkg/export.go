// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	cli "github.com/urfave/cli/v2"

	"github.com/sfkit/sfkit/pkg/salesforce"
	"github.com/sfkit/sfkit/pkg/schema"
)

// loadObjectDefinitions is swappable for tests.
var loadObjectDefinitions = func(ctx context.Context, client *salesforce.Client, names []string, outDir string) error {
	return schema.NewRegistry().LoadFromAPI(ctx, client, names, outDir)
}

// runExport is the root action: describe the requested objects and write
// one YAML definition file per object into --file.
func runExport(c *cli.Context) error {
	outDir := c.String("file")
	if outDir == "" {
		return fmt.Errorf("--file is required: pass the output directory for object definitions")
	}

	// The list is forwarded exactly as supplied; the loader handles
	// duplicate names itself.
	names := c.StringSlice("object")
	log.Info().Int("objects", len(names)).Msg("loading object definitions")

	cfg, err := loadConfigFrom(c)
	if err != nil {
		return err
	}
	client, err := newAPIClient(c, cfg)
	if err != nil {
		return err
	}

	// An empty name list means "everything" — --all is the explicit way to
	// ask for that, but it is also the default when no --object is given.
	return loadObjectDefinitions(c.Context, client, names, outDir)
}
