package model

import (
	"slices"
	"strconv"
	"strings"

	"github.com/viant/apimodel/reference"
)

// Kind identifies an API item variant
type Kind string

const (
	KindPackage            Kind = "Package"
	KindEntryPoint         Kind = "EntryPoint"
	KindNamespace          Kind = "Namespace"
	KindClass              Kind = "Class"
	KindInterface          Kind = "Interface"
	KindEnum               Kind = "Enum"
	KindEnumMember         Kind = "EnumMember"
	KindMethod             Kind = "Method"
	KindMethodSignature    Kind = "MethodSignature"
	KindProperty           Kind = "Property"
	KindPropertySignature  Kind = "PropertySignature"
	KindConstructor        Kind = "Constructor"
	KindFunction           Kind = "Function"
	KindVariable           Kind = "Variable"
	KindTypeAlias          Kind = "TypeAlias"
	KindCallSignature      Kind = "CallSignature"
	KindConstructSignature Kind = "ConstructSignature"
	KindIndexSignature     Kind = "IndexSignature"
)

// Meaning returns the reference meaning of the kind, empty for package and entry point
func (k Kind) Meaning() reference.Meaning {
	switch k {
	case KindClass:
		return reference.MeaningClass
	case KindInterface:
		return reference.MeaningInterface
	case KindTypeAlias:
		return reference.MeaningTypeAlias
	case KindEnum:
		return reference.MeaningEnum
	case KindNamespace:
		return reference.MeaningNamespace
	case KindFunction:
		return reference.MeaningFunction
	case KindVariable:
		return reference.MeaningVariable
	case KindConstructor:
		return reference.MeaningConstructor
	case KindMethod, KindMethodSignature, KindProperty, KindPropertySignature, KindEnumMember:
		return reference.MeaningMember
	case KindCallSignature:
		return reference.MeaningCallSignature
	case KindConstructSignature:
		return reference.MeaningConstructSignature
	case KindIndexSignature:
		return reference.MeaningIndexSignature
	}
	return ""
}

// IsSignature returns true for unnamed signature kinds
func (k Kind) IsSignature() bool {
	switch k {
	case KindConstructor, KindCallSignature, KindConstructSignature, KindIndexSignature:
		return true
	}
	return false
}

var declarationKinds = []Kind{
	KindNamespace, KindClass, KindInterface, KindEnum, KindFunction, KindVariable, KindTypeAlias,
}

var memberKinds = map[Kind][]Kind{
	KindPackage:    {KindEntryPoint},
	KindEntryPoint: declarationKinds,
	KindNamespace:  declarationKinds,
	KindClass:      {KindConstructor, KindMethod, KindProperty},
	KindInterface:  {KindMethodSignature, KindPropertySignature, KindCallSignature, KindConstructSignature, KindIndexSignature},
	KindEnum:       {KindEnumMember},
}

// CanContain returns true if a container of the kind can own a member of the other kind, a package is never a member
func (k Kind) CanContain(member Kind) bool {
	return slices.Contains(memberKinds[k], member)
}

// ReleaseTag represents the release maturity of an API item
type ReleaseTag string

const (
	ReleaseNone     ReleaseTag = "None"
	ReleaseInternal ReleaseTag = "Internal"
	ReleaseAlpha    ReleaseTag = "Alpha"
	ReleaseBeta     ReleaseTag = "Beta"
	ReleasePublic   ReleaseTag = "Public"
)

// IsValid returns true for known release tags
func (r ReleaseTag) IsValid() bool {
	switch r {
	case ReleaseNone, ReleaseInternal, ReleaseAlpha, ReleaseBeta, ReleasePublic:
		return true
	}
	return false
}

func scope(isStatic bool) string {
	if isStatic {
		return "static"
	}
	return "instance"
}

// containerKey builds sibling scoped key: name|Kind[|static|instance][|overloadIndex]
func containerKey(kind Kind, name string, parts ...string) string {
	builder := strings.Builder{}
	builder.WriteString(name)
	builder.WriteByte('|')
	builder.WriteString(string(kind))
	for _, part := range parts {
		builder.WriteByte('|')
		builder.WriteString(part)
	}
	return builder.String()
}

func overloadKey(index int) string {
	return strconv.Itoa(index)
}
