package model

// EnumMember represents an enum member
type EnumMember struct {
	Declaration
	ReleaseAttr
	Name        string
	Initializer Excerpt
}

func (e *EnumMember) Kind() Kind { return KindEnumMember }
func (e *EnumMember) DisplayName() string { return e.Name }
func (e *EnumMember) ContainerKey() string { return containerKey(KindEnumMember, e.Name) }

// Method represents a class method
type Method struct {
	Declaration
	StaticAttr
	OverloadAttr
	ReleaseAttr
	ParametersAttr
	TypeParametersAttr
	ReturnTypeAttr
	Name        string
	IsOptional  bool
	IsProtected bool
	IsAbstract  bool
}

func (m *Method) Kind() Kind { return KindMethod }
func (m *Method) DisplayName() string { return m.Name }
func (m *Method) ContainerKey() string {
	return containerKey(KindMethod, m.Name, scope(m.IsStatic), overloadKey(m.Overload()))
}

// MethodSignature represents an interface method
type MethodSignature struct {
	Declaration
	OverloadAttr
	ReleaseAttr
	ParametersAttr
	TypeParametersAttr
	ReturnTypeAttr
	Name       string
	IsOptional bool
}

func (m *MethodSignature) Kind() Kind { return KindMethodSignature }
func (m *MethodSignature) DisplayName() string { return m.Name }
func (m *MethodSignature) ContainerKey() string {
	return containerKey(KindMethodSignature, m.Name, overloadKey(m.Overload()))
}

// Property represents a class property
type Property struct {
	Declaration
	StaticAttr
	ReleaseAttr
	Name         string
	PropertyType Excerpt
	Initializer  Excerpt
	IsOptional   bool
	IsReadonly   bool
	IsProtected  bool
	IsAbstract   bool
}

func (p *Property) Kind() Kind { return KindProperty }
func (p *Property) DisplayName() string { return p.Name }
func (p *Property) ContainerKey() string {
	return containerKey(KindProperty, p.Name, scope(p.IsStatic))
}

// PropertySignature represents an interface property
type PropertySignature struct {
	Declaration
	ReleaseAttr
	Name         string
	PropertyType Excerpt
	IsOptional   bool
	IsReadonly   bool
}

func (p *PropertySignature) Kind() Kind { return KindPropertySignature }
func (p *PropertySignature) DisplayName() string { return p.Name }
func (p *PropertySignature) ContainerKey() string {
	return containerKey(KindPropertySignature, p.Name)
}

// Constructor represents a class constructor
type Constructor struct {
	Declaration
	OverloadAttr
	ReleaseAttr
	ParametersAttr
	IsProtected bool
}

func (c *Constructor) Kind() Kind { return KindConstructor }
func (c *Constructor) DisplayName() string { return "(constructor)" }
func (c *Constructor) ContainerKey() string {
	return containerKey(KindConstructor, "", overloadKey(c.Overload()))
}

// Function represents a function declaration
type Function struct {
	Declaration
	ExportAttr
	OverloadAttr
	ReleaseAttr
	ParametersAttr
	TypeParametersAttr
	ReturnTypeAttr
	Name string
}

func (f *Function) Kind() Kind { return KindFunction }
func (f *Function) DisplayName() string { return f.Name }
func (f *Function) ContainerKey() string {
	return containerKey(KindFunction, f.Name, overloadKey(f.Overload()))
}

// Variable represents a variable or constant declaration
type Variable struct {
	Declaration
	ExportAttr
	ReleaseAttr
	Name         string
	VariableType Excerpt
	Initializer  Excerpt
	IsReadonly   bool
}

func (v *Variable) Kind() Kind { return KindVariable }
func (v *Variable) DisplayName() string { return v.Name }
func (v *Variable) ContainerKey() string { return containerKey(KindVariable, v.Name) }

// TypeAlias represents a type alias declaration
type TypeAlias struct {
	Declaration
	ExportAttr
	ReleaseAttr
	TypeParametersAttr
	Name string
	Type Excerpt
}

func (t *TypeAlias) Kind() Kind { return KindTypeAlias }
func (t *TypeAlias) DisplayName() string { return t.Name }
func (t *TypeAlias) ContainerKey() string { return containerKey(KindTypeAlias, t.Name) }

// CallSignature represents an interface call signature
type CallSignature struct {
	Declaration
	OverloadAttr
	ReleaseAttr
	ParametersAttr
	TypeParametersAttr
	ReturnTypeAttr
}

func (c *CallSignature) Kind() Kind { return KindCallSignature }
func (c *CallSignature) DisplayName() string { return "(call)" }
func (c *CallSignature) ContainerKey() string {
	return containerKey(KindCallSignature, "", overloadKey(c.Overload()))
}

// ConstructSignature represents an interface construct signature
type ConstructSignature struct {
	Declaration
	OverloadAttr
	ReleaseAttr
	ParametersAttr
	TypeParametersAttr
	ReturnTypeAttr
}

func (c *ConstructSignature) Kind() Kind { return KindConstructSignature }
func (c *ConstructSignature) DisplayName() string { return "(new)" }
func (c *ConstructSignature) ContainerKey() string {
	return containerKey(KindConstructSignature, "", overloadKey(c.Overload()))
}

// IndexSignature represents an interface index signature
type IndexSignature struct {
	Declaration
	OverloadAttr
	ReleaseAttr
	ParametersAttr
	ReturnTypeAttr
	IsReadonly bool
}

func (i *IndexSignature) Kind() Kind { return KindIndexSignature }
func (i *IndexSignature) DisplayName() string { return "(index)" }
func (i *IndexSignature) ContainerKey() string {
	return containerKey(KindIndexSignature, "", overloadKey(i.Overload()))
}
