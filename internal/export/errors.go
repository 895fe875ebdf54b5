package export

import (
	"errors"
	"fmt"
)

// ErrMissingRelation indicates a required reference is absent from the source graph.
var ErrMissingRelation = errors.New("missing required relation")

// RelationError names the workflow (and child entity) whose required relation is missing.
type RelationError struct {
	Kind     string // entity kind, e.g. Wkf or WkfTransition
	Wkf      string // owning workflow name
	Entity   string // node or transition name, empty for the workflow itself
	Relation string // relation field, e.g. statusField
}

func (e *RelationError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("%s %q: %s: %v", e.Kind, e.Wkf, e.Relation, ErrMissingRelation)
	}
	return fmt.Sprintf("%s %q of workflow %q: %s: %v", e.Kind, e.Entity, e.Wkf, e.Relation, ErrMissingRelation)
}

func (e *RelationError) Unwrap() error {
	return ErrMissingRelation
}

// IsMissingRelation checks if an error indicates a missing required relation.
func IsMissingRelation(err error) bool {
	return errors.Is(err, ErrMissingRelation)
}
