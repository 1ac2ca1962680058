package domain

import "slices"

// Progress is the ordered set of completed syllabus item titles for one course.
type Progress []string

func (p Progress) Contains(item string) bool {
	return slices.Contains(p, item)
}

// Set marks item complete or incomplete. Completing appends when absent;
// un-completing removes every occurrence. The receiver is not modified.
func (p Progress) Set(item string, complete bool) Progress {
	out := slices.Clone(p)
	if out == nil {
		out = Progress{}
	}
	if complete {
		if !out.Contains(item) {
			out = append(out, item)
		}
		return out
	}
	return slices.DeleteFunc(out, func(s string) bool { return s == item })
}

// Toggle flips the completion state of item.
func (p Progress) Toggle(item string) Progress {
	return p.Set(item, !p.Contains(item))
}

// CompletionPercentage is completed/syllabusLength*100, or 0 for an empty syllabus.
func CompletionPercentage(completed, syllabusLength int) float64 {
	if syllabusLength <= 0 {
		return 0
	}
	return float64(completed) / float64(syllabusLength) * 100
}

// IsCompleted reports whether every syllabus item has been completed.
func IsCompleted(completed, syllabusLength int) bool {
	return syllabusLength > 0 && completed >= syllabusLength
}

// ClampPercentage bounds a percentage to [0, 100] for display.
func ClampPercentage(pct float64) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}
