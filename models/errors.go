package models

import "fmt"

// ErrorValidation marks user input missing a required field. The operation is
// aborted with no state change.
type ErrorValidation struct {
	Field  string
	Reason string
}

func (e ErrorValidation) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ErrorConflict marks an operation refused because of current state, such as
// deleting a collection that still holds articles.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

type ErrorNotFound struct {
	Resource string
	ID       string
}

func (e ErrorNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ErrorState marks an internally inconsistent store state. It should be
// unreachable while the guard policies hold.
type ErrorState struct {
	Message string
}

func (e ErrorState) Error() string { return e.Message }

// ErrorMissingResource marks an informational notice, such as requesting the
// download of an article that has no URL. Not an aborting error.
type ErrorMissingResource struct {
	Message string
}

func (e ErrorMissingResource) Error() string { return e.Message }
