package reference

import (
	"strconv"
	"strings"
)

// detachedStep is rendered in place of the ancestors of an item that has no parent
const detachedStep = "(parent)"

// Step is a single navigation step of a reference path
type Step struct {
	Navigation Navigation
	Name       string
}

// Reference is a canonical reference: package, navigation steps, meaning and overload index.
// A Reference is treated as immutable, builder methods return modified copies.
type Reference struct {
	Package       string
	Steps         []Step
	Meaning       Meaning
	OverloadIndex int  // 1-based, 0 when absent
	Detached      bool // built without an attached parent, display only
}

// New creates an empty reference stamped with a package name
func New(pkg string) *Reference {
	return &Reference{Package: pkg}
}

// NewDetached creates a display only reference standing for an unknown parent
func NewDetached() *Reference {
	return &Reference{Detached: true}
}

// IsRelative returns true if reference has no package part
func (r *Reference) IsRelative() bool {
	return r.Package == "" && !r.Detached
}

func (r *Reference) clone() *Reference {
	ret := *r
	ret.Steps = make([]Step, len(r.Steps), len(r.Steps)+1)
	copy(ret.Steps, r.Steps)
	return &ret
}

// AddStep returns a reference extended by one navigation step, meaning and overload index are cleared
func (r *Reference) AddStep(navigation Navigation, name string) *Reference {
	ret := r.clone()
	ret.Steps = append(ret.Steps, Step{Navigation: navigation, Name: name})
	ret.Meaning = ""
	ret.OverloadIndex = 0
	return ret
}

// WithPackage returns a reference with the package part replaced
func (r *Reference) WithPackage(pkg string) *Reference {
	ret := r.clone()
	ret.Package = pkg
	return ret
}

// WithMeaning returns a reference stamped with the meaning
func (r *Reference) WithMeaning(meaning Meaning) *Reference {
	ret := r.clone()
	ret.Meaning = meaning
	return ret
}

// WithOverloadIndex returns a reference stamped with the overload index
func (r *Reference) WithOverloadIndex(index int) *Reference {
	ret := r.clone()
	ret.OverloadIndex = index
	return ret
}

// Prefix returns the reference limited to the first n steps without meaning and overload index
func (r *Reference) Prefix(n int) *Reference {
	if n > len(r.Steps) {
		n = len(r.Steps)
	}
	ret := &Reference{Package: r.Package, Detached: r.Detached}
	ret.Steps = append([]Step{}, r.Steps[:n]...)
	return ret
}

// Equal returns true if both references have the same textual form
func (r *Reference) Equal(other *Reference) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.String() == other.String()
}

// String returns reference text, i.e. lib!Widget#render:member(1)
func (r *Reference) String() string {
	builder := strings.Builder{}
	switch {
	case r.Detached:
		builder.WriteString(detachedStep)
	case r.Package != "":
		builder.WriteString(r.Package)
		builder.WriteByte('!')
	}
	for i, step := range r.Steps {
		if i > 0 || r.Detached || step.Navigation != Exports {
			builder.WriteString(string(step.Navigation))
		}
		builder.WriteString(quoteName(step.Name))
	}
	if r.Meaning != "" {
		builder.WriteByte(':')
		builder.WriteString(string(r.Meaning))
	}
	if r.OverloadIndex > 0 {
		builder.WriteByte('(')
		builder.WriteString(strconv.Itoa(r.OverloadIndex))
		builder.WriteByte(')')
	}
	return builder.String()
}

func isNameChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func quoteName(name string) string {
	needsQuote := name == ""
	for i := 0; i < len(name) && !needsQuote; i++ {
		needsQuote = !isNameChar(name[i])
	}
	if !needsQuote {
		return name
	}
	builder := strings.Builder{}
	builder.WriteByte('"')
	for i := 0; i < len(name); i++ {
		if name[i] == '"' || name[i] == '\\' {
			builder.WriteByte('\\')
		}
		builder.WriteByte(name[i])
	}
	builder.WriteByte('"')
	return builder.String()
}
