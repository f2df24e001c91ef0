package diagnostics

import (
	"sort"

	"github.com/pkg/errors"
)

// registry maps short names accepted on the command line to plot constructors.
var registry = map[string]func(Deps) Plot{
	"CPLLOG":    NewCplLog,
	"CPLLOG_TS": NewCplLogTimeseries,
	"DWBC":      NewWesternBoundary,
}

// Names returns short names of all known plots.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns plot registered under shortName.
func New(shortName string, deps Deps) (Plot, error) {
	constructor, ok := registry[shortName]
	if !ok {
		return nil, errors.Errorf("unknown plot %q, available plots: %v", shortName, Names())
	}
	return constructor(deps), nil
}

// NewAll returns plots for given short names keeping their order.
func NewAll(shortNames []string, deps Deps) ([]Plot, error) {
	plots := make([]Plot, 0, len(shortNames))
	for _, name := range shortNames {
		p, err := New(name, deps)
		if err != nil {
			return nil, err
		}
		plots = append(plots, p)
	}
	return plots, nil
}
