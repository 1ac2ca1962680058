package cli

import (
	"strings"

	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/spf13/pflag"
)

// sortFlag is a pflag.Value restricted to a list's sort options.
type sortFlag struct {
	value   domain.SortOption
	allowed []domain.SortOption
}

var _ pflag.Value = (*sortFlag)(nil)

func newSortFlag(def domain.SortOption, allowed []domain.SortOption) *sortFlag {
	return &sortFlag{value: def, allowed: allowed}
}

func (f *sortFlag) String() string { return string(f.value) }

func (f *sortFlag) Set(s string) error {
	opt, err := domain.ParseSortOption(strings.ToLower(strings.TrimSpace(s)), f.allowed)
	if err != nil {
		return err
	}
	f.value = opt
	return nil
}

func (f *sortFlag) Type() string { return "sort" }

func (f *sortFlag) usage() string {
	names := make([]string, len(f.allowed))
	for i, o := range f.allowed {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}
