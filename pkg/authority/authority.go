// Package authority supplies the curated, authoritative display names for
// congressional committees. The table is configuration data shipped with the
// binary; callers may override or extend it from a file at startup.
//
// The authority is the first tier of the committee naming chain. Names that
// fall through to the definitions dataset or to synthesized placeholders are
// recorded as diagnostics by the reconciler.
package authority

import (
	_ "embed"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/Jib667/Watchdog/pkg/errors"
)

//go:embed committee_names.yaml
var embeddedNames []byte

// Authority resolves authoritative committee names by code.
type Authority interface {
	// CommitteeName returns the curated name for a committee code.
	CommitteeName(code string) (string, bool)

	// List returns all curated names sorted by code.
	List() []Name
}

// Name is one entry in the curated name table.
type Name struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// nameTable is the on-disk shape of the curated table.
type nameTable struct {
	Committees map[string]string `yaml:"committees"`
}

type authority struct {
	names map[string]string
}

// Option configures an Authority.
type Option func(*authority) error

// WithFile merges curated names from a YAML file over the embedded table.
func WithFile(path string) Option {
	return func(a *authority) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.WrapIO("read", path, err)
		}
		var table nameTable
		if err := yaml.Unmarshal(data, &table); err != nil {
			return errors.WrapParse("yaml", path, err)
		}
		for code, name := range table.Committees {
			a.names[normalizeCode(code)] = name
		}
		return nil
	}
}

// WithNames merges curated names from a map over the embedded table.
func WithNames(names map[string]string) Option {
	return func(a *authority) error {
		for code, name := range names {
			a.names[normalizeCode(code)] = name
		}
		return nil
	}
}

// New creates an Authority backed by the embedded table, with any options
// applied on top.
func New(opts ...Option) (Authority, error) {
	var table nameTable
	if err := yaml.Unmarshal(embeddedNames, &table); err != nil {
		return nil, errors.WrapParse("yaml", "committee_names.yaml", err)
	}

	a := &authority{names: make(map[string]string, len(table.Committees))}
	for code, name := range table.Committees {
		a.names[normalizeCode(code)] = name
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// CommitteeName returns the curated name for a committee code.
func (a *authority) CommitteeName(code string) (string, bool) {
	name, ok := a.names[normalizeCode(code)]
	return name, ok
}

// List returns all curated names sorted by code.
func (a *authority) List() []Name {
	names := make([]Name, 0, len(a.names))
	for code, name := range a.names {
		names = append(names, Name{Code: code, Name: name})
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Code < names[j].Code })
	return names
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
