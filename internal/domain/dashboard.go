package domain

import (
	"fmt"
	"slices"
	"strings"
)

// SortOption orders dashboard lists.
type SortOption string

const (
	SortProgressDesc SortOption = "progress-desc"
	SortProgressAsc  SortOption = "progress-asc"
	SortTitleAsc     SortOption = "title-asc"
	SortTitleDesc    SortOption = "title-desc"
	SortCategory     SortOption = "category"
)

var (
	InProgressSortOptions = []SortOption{SortProgressDesc, SortProgressAsc, SortTitleAsc, SortTitleDesc, SortCategory}
	CompletedSortOptions  = []SortOption{SortTitleAsc, SortTitleDesc, SortCategory}
)

func ParseSortOption(s string, allowed []SortOption) (SortOption, error) {
	for _, o := range allowed {
		if string(o) == s {
			return o, nil
		}
	}
	names := make([]string, len(allowed))
	for i, o := range allowed {
		names[i] = string(o)
	}
	return "", fmt.Errorf("invalid sort %q (use %s)", s, strings.Join(names, ", "))
}

// SortInProgress returns a sorted copy. Unknown options fall back to progress-desc.
func SortInProgress(list []CourseWithProgress, opt SortOption) []CourseWithProgress {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b CourseWithProgress) int {
		switch opt {
		case SortProgressAsc:
			return cmpFloat(a.CompletionPercentage, b.CompletionPercentage)
		case SortTitleAsc:
			return compareFold(a.Title, b.Title)
		case SortTitleDesc:
			return compareFold(b.Title, a.Title)
		case SortCategory:
			return compareFold(a.Category, b.Category)
		default:
			return cmpFloat(b.CompletionPercentage, a.CompletionPercentage)
		}
	})
	return out
}

// SortCompleted returns a sorted copy. Unknown options fall back to title-asc.
func SortCompleted(list []Course, opt SortOption) []Course {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b Course) int {
		switch opt {
		case SortTitleDesc:
			return compareFold(b.Title, a.Title)
		case SortCategory:
			return compareFold(a.Category, b.Category)
		default:
			return compareFold(a.Title, b.Title)
		}
	})
	return out
}

// FilterByTitle keeps entries whose title contains term, ignoring case.
func FilterByTitle[T interface{ GetTitle() string }](list []T, term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(list)
	}
	out := make([]T, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.GetTitle()), term) {
			out = append(out, c)
		}
	}
	return out
}

func (c Course) GetTitle() string { return c.Title }

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
