package services

import (
	"regexp"
	"sort"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// Registry is a flat, name-sorted set of generators built for one invocation.
// It is never shared between invocations.
type Registry struct {
	entries []domain.ModuleEntry
}

// FlattenModules walks tree depth-first and returns one entry per generator,
// named by joining the path with "__" and sorted by name.
func FlattenModules(tree domain.ModuleTree) []domain.ModuleEntry {
	var entries []domain.ModuleEntry
	flatten(tree, "", &entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

func flatten(category domain.Category, prefix string, out *[]domain.ModuleEntry) {
	for name, node := range category {
		fullName := name
		if prefix != "" {
			fullName = prefix + domain.ModuleNameSeparator + name
		}

		switch n := node.(type) {
		case domain.Generator:
			if n != nil {
				*out = append(*out, domain.ModuleEntry{Name: fullName, Generate: n})
			}
		case domain.Category:
			flatten(n, fullName, out)
		}
	}
}

// BuildRegistry flattens tree and keeps the entries whose name matches filter
// at its start. An empty filter keeps everything.
//
// Returns a *domain.ConfigError for an invalid pattern and a
// *domain.EmptyRegistryError when nothing matches.
func BuildRegistry(tree domain.ModuleTree, filter string) (*Registry, error) {
	all := FlattenModules(tree)

	match, err := compileFilter(filter)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ModuleEntry, 0, len(all))
	for _, entry := range all {
		if match(entry.Name) {
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		return nil, &domain.EmptyRegistryError{
			Filter:  filter,
			Samples: sampleNames(all, domain.MaxRegistrySamples),
		}
	}

	return &Registry{entries: entries}, nil
}

// compileFilter returns a prefix-anchored matcher: "algebra" matches
// "algebra__linear_1d" but "linear" does not.
func compileFilter(filter string) (func(string) bool, error) {
	if filter == "" {
		return func(string) bool { return true }, nil
	}
	re, err := regexp.Compile(`^(?:` + filter + `)`)
	if err != nil {
		return nil, &domain.ConfigError{Field: "filter", Value: filter, Reason: err.Error()}
	}
	return re.MatchString, nil
}

// sampleNames returns up to n names from sorted entries.
func sampleNames(sorted []domain.ModuleEntry, n int) []string {
	if len(sorted) < n {
		n = len(sorted)
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = sorted[i].Name
	}
	return names
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entry returns the entry at index i.
func (r *Registry) Entry(i int) domain.ModuleEntry {
	return r.entries[i]
}

// Names returns the entry names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}
