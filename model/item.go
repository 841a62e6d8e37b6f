package model

import (
	"iter"
	"sync/atomic"

	"github.com/viant/apimodel/reference"
)

// Item represents a node of the API tree, the set of implementations is closed
type Item interface {
	// Kind returns item variant
	Kind() Kind
	// DisplayName returns item name, unnamed signatures return a parenthesized kind
	DisplayName() string
	// ContainerKey returns key unique among the item siblings
	ContainerKey() string
	// Parent returns enclosing container or nil for a detached item
	Parent() Item
	// Doc returns opaque doc comment
	Doc() string
	// DeclarationExcerpt returns declaration text span
	DeclarationExcerpt() Excerpt

	declaration() *Declaration
}

// Declaration holds attributes shared by every item
type Declaration struct {
	DocComment string
	Excerpt    Excerpt

	parent Item
	ref    atomic.Pointer[reference.Reference]
}

func (d *Declaration) declaration() *Declaration {
	return d
}

// Parent returns enclosing container
func (d *Declaration) Parent() Item {
	return d.parent
}

// Doc returns doc comment
func (d *Declaration) Doc() string {
	return d.DocComment
}

// DeclarationExcerpt returns declaration excerpt
func (d *Declaration) DeclarationExcerpt() Excerpt {
	return d.Excerpt
}

// Container is implemented by items owning members
type Container interface {
	Item
	AddMember(member Item) error
	Members() []Item
	TryGetMemberByKey(key string) (Item, bool)
	FindMembersByName(name string) []Item
	MembersOfKind(kind Kind) iter.Seq[Item]
}

// Staticable is implemented by class members
type Staticable interface {
	Item
	Static() bool
}

// Exportable is implemented by declarations reachable from a namespace or entry point
type Exportable interface {
	Item
	Exported() bool
}

// Overloadable is implemented by items grouped with same-named signature siblings
type Overloadable interface {
	Item
	Overload() int
}

// Releasable is implemented by items carrying a release tag
type Releasable interface {
	Item
	Release() ReleaseTag
}

// Parameterized is implemented by callable items
type Parameterized interface {
	Item
	Params() []Parameter
}

// TypeParameterized is implemented by generic items
type TypeParameterized interface {
	Item
	TypeParams() []TypeParameter
}

// Returning is implemented by items with a return type
type Returning interface {
	Item
	Returns() Excerpt
}

// Parameter represents a callable parameter
type Parameter struct {
	Name       string
	Type       Excerpt
	IsOptional bool
}

// TypeParameter represents a generic type parameter
type TypeParameter struct {
	Name       string
	Constraint Excerpt
	Default    Excerpt
	IsOptional bool
}

// ReleaseAttr holds release tag
type ReleaseAttr struct {
	ReleaseTag ReleaseTag
}

// Release returns release tag, None when unset
func (a *ReleaseAttr) Release() ReleaseTag {
	if a.ReleaseTag == "" {
		return ReleaseNone
	}
	return a.ReleaseTag
}

// StaticAttr holds static flag
type StaticAttr struct {
	IsStatic bool
}

// Static returns true for static members
func (a *StaticAttr) Static() bool {
	return a.IsStatic
}

// ExportAttr holds export flag. The zero value is not exported, such declarations are reached
// through the Locals step (lib!~Widget:class); set IsExported for public declarations.
type ExportAttr struct {
	IsExported bool
}

// Exported returns true for exported declarations
func (a *ExportAttr) Exported() bool {
	return a.IsExported
}

// OverloadAttr holds 1-based overload index
type OverloadAttr struct {
	OverloadIndex int
}

// Overload returns overload index, an unset index stands for the first overload
func (a *OverloadAttr) Overload() int {
	if a.OverloadIndex < 1 {
		return 1
	}
	return a.OverloadIndex
}

// ParametersAttr holds parameter list
type ParametersAttr struct {
	Parameters []Parameter
}

// Params returns parameters
func (a *ParametersAttr) Params() []Parameter {
	return a.Parameters
}

// TypeParametersAttr holds type parameter list
type TypeParametersAttr struct {
	TypeParameters []TypeParameter
}

// TypeParams returns type parameters
func (a *TypeParametersAttr) TypeParams() []TypeParameter {
	return a.TypeParameters
}

// ReturnTypeAttr holds return type span
type ReturnTypeAttr struct {
	ReturnType Excerpt
}

// Returns returns return type excerpt
func (a *ReturnTypeAttr) Returns() Excerpt {
	return a.ReturnType
}
