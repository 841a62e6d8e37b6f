package model

// Package is the root of a loaded API tree, its members are entry points
type Package struct {
	Declaration
	members
	Name string

	ToolPackage   string // producer of the document the package was loaded from
	ToolVersion   string
	SchemaVersion int
	TSDocConfig   string // opaque doc comment parser configuration
}

func (p *Package) Kind() Kind { return KindPackage }
func (p *Package) DisplayName() string { return p.Name }
func (p *Package) ContainerKey() string { return containerKey(KindPackage, p.Name) }

// AddMember adds an entry point
func (p *Package) AddMember(member Item) error { return p.add(p, member) }

// EntryPoint returns entry point for the import path, empty path for the main entry point
func (p *Package) EntryPoint(importPath string) *EntryPoint {
	item, ok := p.TryGetMemberByKey(containerKey(KindEntryPoint, importPath))
	if !ok {
		return nil
	}
	entryPoint, _ := item.(*EntryPoint)
	return entryPoint
}

// EntryPoint groups exports reachable from one import path, Name is empty for the main entry point.
// The main entry point has no reference of its own: it shares the package reference, which resolves to the package.
type EntryPoint struct {
	Declaration
	members
	Name string
}

func (e *EntryPoint) Kind() Kind { return KindEntryPoint }
func (e *EntryPoint) DisplayName() string { return e.Name }
func (e *EntryPoint) ContainerKey() string { return containerKey(KindEntryPoint, e.Name) }

// AddMember adds an exported declaration
func (e *EntryPoint) AddMember(member Item) error { return e.add(e, member) }

// Namespace represents a namespace declaration
type Namespace struct {
	Declaration
	members
	ExportAttr
	ReleaseAttr
	Name string
}

func (n *Namespace) Kind() Kind { return KindNamespace }
func (n *Namespace) DisplayName() string { return n.Name }
func (n *Namespace) ContainerKey() string { return containerKey(KindNamespace, n.Name) }

// AddMember adds a namespace member
func (n *Namespace) AddMember(member Item) error { return n.add(n, member) }

// Class represents a class declaration
type Class struct {
	Declaration
	members
	ExportAttr
	ReleaseAttr
	TypeParametersAttr
	Name       string
	Extends    Excerpt
	Implements []Excerpt
	IsAbstract bool
}

func (c *Class) Kind() Kind { return KindClass }
func (c *Class) DisplayName() string { return c.Name }
func (c *Class) ContainerKey() string { return containerKey(KindClass, c.Name) }

// AddMember adds a class member
func (c *Class) AddMember(member Item) error { return c.add(c, member) }

// Interface represents an interface declaration
type Interface struct {
	Declaration
	members
	ExportAttr
	ReleaseAttr
	TypeParametersAttr
	Name    string
	Extends []Excerpt
}

func (i *Interface) Kind() Kind { return KindInterface }
func (i *Interface) DisplayName() string { return i.Name }
func (i *Interface) ContainerKey() string { return containerKey(KindInterface, i.Name) }

// AddMember adds an interface member
func (i *Interface) AddMember(member Item) error { return i.add(i, member) }

// Enum represents an enum declaration
type Enum struct {
	Declaration
	members
	ExportAttr
	ReleaseAttr
	Name string
}

func (e *Enum) Kind() Kind { return KindEnum }
func (e *Enum) DisplayName() string { return e.Name }
func (e *Enum) ContainerKey() string { return containerKey(KindEnum, e.Name) }

// AddMember adds an enum member
func (e *Enum) AddMember(member Item) error { return e.add(e, member) }
