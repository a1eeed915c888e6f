// SPDX-FileCopyrightText: Copyright (c) 2026 sfkit authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/sfkit/sfkit/pkg/salesforce"
)

// Registry holds loaded object definitions keyed by object API name, then
// by field API name. Safe for concurrent reads after loading.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]map[string]Field
	log  zerolog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]map[string]Field),
		log:  log.With().Str("component", "schema").Logger(),
	}
}

// LoadFromAPI describes the named objects (all visible objects when names is
// empty) and stores their field schemas. Duplicate names are described once,
// first occurrence wins. When outDir is non-empty, every schema is also
// written there as <object>.yaml. Objects that fail to describe are logged
// and skipped; the load fails only when nothing could be loaded at all.
func (r *Registry) LoadFromAPI(ctx context.Context, client *salesforce.Client, names []string, outDir string) error {
	if len(names) == 0 {
		summaries, err := client.DescribeGlobal(ctx)
		if err != nil {
			return fmt.Errorf("listing objects: %w", err)
		}
		names = lo.Map(summaries, func(s salesforce.SObjectSummary, _ int) string {
			return s.Name
		})
	}
	names = dedupeNames(names)

	loaded := 0
	for _, name := range names {
		desc, err := client.Describe(ctx, name)
		if err != nil {
			r.log.Error().Err(err).Str("object", name).Msg("object not found or description failed")
			continue
		}

		fields := FieldsFromDescribe(desc)
		r.log.Debug().Str("object", name).Int("fields", len(fields)).Msg("loaded object definition")
		r.put(name, fields)
		loaded++

		if outDir != "" {
			r.log.Debug().Str("object", name).Str("dir", outDir).Msg("writing object definition")
			if err := WriteObjectYAML(outDir, name, fields); err != nil {
				return err
			}
		}
	}

	if loaded == 0 && len(names) > 0 {
		return fmt.Errorf("no object definitions could be loaded (%d requested)", len(names))
	}
	return nil
}

// dedupeNames removes duplicate object names, keeping first-seen order.
func dedupeNames(names []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen.Add(n) {
			out = append(out, n)
		}
	}
	return out
}

// LoadFromCache loads definitions from *.yaml files in dir. When names is
// non-empty, only the listed objects are loaded. Files that do not parse as
// a field sequence are logged and skipped.
func (r *Registry) LoadFromCache(dir string, names []string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("scanning cache folder: %w", err)
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	for _, path := range paths {
		object := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if len(wanted) > 0 && !wanted[object] {
			continue
		}

		fields, err := ReadObjectYAML(path)
		if err != nil {
			r.log.Error().Err(err).Str("file", path).Msg("skipping unreadable cached definition")
			continue
		}
		r.log.Debug().Str("object", object).Int("fields", len(fields)).Msg("loaded cached definition")
		r.put(object, fields)
	}
	return nil
}

func (r *Registry) put(object string, fields []Field) {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			continue
		}
		byName[f.Name] = f
	}
	r.mu.Lock()
	r.defs[object] = byName
	r.mu.Unlock()
}

// Objects returns the loaded object names, sorted.
func (r *Registry) Objects() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fields returns the field definitions of one object.
func (r *Registry) Fields(object string) (map[string]Field, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fields, ok := r.defs[object]
	return fields, ok
}

// FieldNames returns the sorted field API names of one object, suitable for
// a SOQL SELECT list.
func (r *Registry) FieldNames(object string) ([]string, error) {
	fields, ok := r.Fields(object)
	if !ok {
		return nil, fmt.Errorf("object %q not found in loaded definitions", object)
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// References returns the lookup fields of one object, keyed by field name.
func (r *Registry) References(object string) map[string]Field {
	fields, ok := r.Fields(object)
	if !ok {
		return nil
	}
	refs := make(map[string]Field)
	for name, f := range fields {
		if f.Reference != "" {
			refs[name] = f
		}
	}
	return refs
}

// Get fetches a record by Id using the object's loaded field list.
func (r *Registry) Get(ctx context.Context, client *salesforce.Client, object, id string) (salesforce.Record, error) {
	fields, err := r.FieldNames(object)
	if err != nil {
		return nil, err
	}
	return client.GetRecord(ctx, object, id, fields)
}

// ResolveReferences replaces lookup Ids on a record with the referenced
// records. A resolved custom lookup is stored under its relationship name
// (Foo__c becomes Foo__r) with the Id field kept; a standard lookup field
// is replaced in place. When only is non-empty, just the listed lookup
// fields are resolved. Lookups that fail to fetch are logged and left
// unresolved.
func (r *Registry) ResolveReferences(ctx context.Context, client *salesforce.Client, record salesforce.Record, object string, only []string) salesforce.Record {
	refs := r.References(object)
	if len(refs) == 0 {
		r.log.Debug().Str("object", object).Msg("no reference fields to resolve")
		return record
	}

	for name, field := range refs {
		id := cast.ToString(record[name])
		if id == "" {
			continue
		}
		if len(only) > 0 && !lo.Contains(only, name) {
			continue
		}

		referenced, err := r.Get(ctx, client, field.Reference, id)
		if err != nil {
			r.log.Error().Err(err).
				Str("object", object).
				Str("field", name).
				Str("reference", field.Reference).
				Msg("could not resolve reference")
			continue
		}
		record[strings.ReplaceAll(name, "__c", "__r")] = referenced
	}
	return record
}

// PrettyPrint writes a record as "Label (Name): value" lines ordered by
// field label, using the loaded definitions for labels.
func (r *Registry) PrettyPrint(w io.Writer, record salesforce.Record, object string, indent int) error {
	fields, ok := r.Fields(object)
	if !ok {
		return fmt.Errorf("object %q not found in loaded definitions", object)
	}

	sorted := lo.Values(fields)
	sort.Slice(sorted, func(i, j int) bool {
		li, lj := sorted[i].Label, sorted[j].Label
		if li == "" {
			li = sorted[i].Name
		}
		if lj == "" {
			lj = sorted[j].Name
		}
		return li < lj
	})

	prefix := strings.Repeat(" ", indent)
	fmt.Fprintf(w, "%s---- Object: %s ----\n", prefix, object)
	for _, f := range sorted {
		label := f.Label
		if label == "" {
			label = f.Name
		}
		fmt.Fprintf(w, "%s%s (%s): %v\n", prefix, label, f.Name, record[f.Name])
	}
	return nil
}
