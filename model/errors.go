package model

import (
	"fmt"
	"strings"

	"github.com/viant/apimodel/reference"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrDuplicateKey indicates a container already holds a member with the same container key
	ErrDuplicateKey = errors.Base("duplicate container key")
	// ErrAlreadyAttached indicates an item added to a container while having a parent
	ErrAlreadyAttached = errors.Base("item already has a parent")
	// ErrMemberKind indicates a member kind the container cannot own
	ErrMemberKind = errors.Base("member kind not allowed in container")
	// ErrCycle indicates an item added beneath itself
	ErrCycle = errors.Base("item would become its own ancestor")
	// ErrMalformedTree indicates an ancestor lacks a structurally required name
	ErrMalformedTree = errors.Base("malformed tree")

	// ErrMalformedReferenceSyntax indicates unparsable reference text
	ErrMalformedReferenceSyntax = reference.ErrSyntax
	// ErrStepNotFound indicates no item matches a reference step
	ErrStepNotFound = errors.Base("reference step not found")
	// ErrAmbiguousMeaning indicates more than one item remains and the reference does not pick one
	ErrAmbiguousMeaning = errors.Base("ambiguous reference meaning")
)

// ResolveError reports a failed resolution with the longest matched step prefix
type ResolveError struct {
	Reference string
	Matched   string
	Detail    string
	Err       error
}

func (e *ResolveError) Error() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("failed to resolve %q: %v", e.Reference, e.Err))
	if e.Detail != "" {
		builder.WriteString(": ")
		builder.WriteString(e.Detail)
	}
	if e.Matched != "" {
		builder.WriteString(fmt.Sprintf(" (matched %q)", e.Matched))
	}
	return builder.String()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

func newResolveError(ref string, matched *reference.Reference, err error, detail string) *ResolveError {
	ret := &ResolveError{Reference: ref, Err: err, Detail: detail}
	if matched != nil {
		ret.Matched = matched.String()
	}
	return ret
}
