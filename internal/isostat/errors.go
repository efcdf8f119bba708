package isostat

import "fmt"

// EmptySubsetError indicates a named subset holds zero records, leaving mean
// and standard deviation undefined.
type EmptySubsetError struct {
	Subset string
}

func (e *EmptySubsetError) Error() string {
	return fmt.Sprintf("subset %q has no records", e.Subset)
}

// InsufficientGroupsError indicates ANOVA or Tukey HSD was requested with
// fewer than two distinct groups after filtering.
type InsufficientGroupsError struct {
	Variable string
	Groups   int
}

func (e *InsufficientGroupsError) Error() string {
	return fmt.Sprintf("%s: need at least 2 groups, have %d", e.Variable, e.Groups)
}
