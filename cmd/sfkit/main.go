// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// sfkit exports Salesforce object metadata to YAML definition files and
// works with records through those definitions.
//
// The root invocation performs the export:
//
//	sfkit -o Account -o Contact -f ./definitions
//	sfkit --all -f ./definitions
//
// Subcommands cover login, SOQL queries, record access, and file upload.
package main

import (
	"context"
	"fmt"
	"os"

	sfkit "github.com/sfkit/sfkit/cmd/sfkit/pkg"
)

func main() {
	ctx := context.Background()

	app := sfkit.NewApp()
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
