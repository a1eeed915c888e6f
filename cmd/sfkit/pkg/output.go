// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sfkit

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/sfkit/sfkit/pkg/salesforce"
)

// FormatRecords writes query results in the requested format
// (json, yaml, table).
func FormatRecords(w io.Writer, records []salesforce.Record, format string) error {
	switch format {
	case "yaml":
		return printYAML(w, records)
	case "table":
		return printTable(w, records)
	default:
		return printJSON(w, records)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v any) error {
	return yaml.NewEncoder(w).Encode(v)
}

// tableFields are the candidate columns, in display order. Only the ones
// present on the first record are shown.
var tableFields = []string{"Id", "Name", "CreatedDate", "LastModifiedDate"}

func printTable(w io.Writer, records []salesforce.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "(no results)")
		return nil
	}

	var cols []string
	for _, f := range tableFields {
		if _, ok := records[0][f]; ok {
			cols = append(cols, f)
		}
	}
	if len(cols) == 0 {
		return printJSON(w, records)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)

	for _, rec := range records {
		for i, c := range cols {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cast.ToString(rec[c]))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
