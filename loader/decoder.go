package loader

import (
	"context"
	"encoding/json"

	"github.com/viant/apimodel/model"
	"gitlab.com/tozd/go/errors"
)

// decoder builds one package tree, field layout follows the effective schema version
type decoder struct {
	ctx     context.Context
	version int
	config  *Config
	stored  map[model.Item]string // canonical reference written by the producer
	items   int
}

type constructor func(d *decoder, f *fields) model.Item

var constructors = map[model.Kind]constructor{
	model.KindEntryPoint: func(d *decoder, f *fields) model.Item {
		item := &model.EntryPoint{Name: f.string("name")}
		f.declare(&item.Declaration)
		return item
	},
	model.KindNamespace: func(d *decoder, f *fields) model.Item {
		item := &model.Namespace{Name: f.string("name"), ExportAttr: d.exported(f), ReleaseAttr: f.release()}
		f.declare(&item.Declaration)
		return item
	},
	model.KindClass: func(d *decoder, f *fields) model.Item {
		item := &model.Class{
			Name:               f.string("name"),
			ExportAttr:         d.exported(f),
			ReleaseAttr:        f.release(),
			TypeParametersAttr: d.typeParameters(f),
			Extends:            f.excerpt("extendsTokenRange"),
			Implements:         f.excerpts("implementsTokenRanges"),
			IsAbstract:         d.flag(f, "isAbstract", SchemaV1011),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindInterface: func(d *decoder, f *fields) model.Item {
		item := &model.Interface{
			Name:               f.string("name"),
			ExportAttr:         d.exported(f),
			ReleaseAttr:        f.release(),
			TypeParametersAttr: d.typeParameters(f),
			Extends:            f.excerpts("extendsTokenRanges"),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindEnum: func(d *decoder, f *fields) model.Item {
		item := &model.Enum{Name: f.string("name"), ExportAttr: d.exported(f), ReleaseAttr: f.release()}
		f.declare(&item.Declaration)
		return item
	},
	model.KindEnumMember: func(d *decoder, f *fields) model.Item {
		initializer := "valueTokenRange"
		if d.version >= SchemaV1003 {
			initializer = "initializerTokenRange"
		}
		item := &model.EnumMember{Name: f.string("name"), ReleaseAttr: f.release(), Initializer: f.excerpt(initializer)}
		f.declare(&item.Declaration)
		return item
	},
	model.KindMethod: func(d *decoder, f *fields) model.Item {
		item := &model.Method{
			Name:               f.string("name"),
			StaticAttr:         f.static(),
			OverloadAttr:       f.overload(),
			ReleaseAttr:        f.release(),
			ParametersAttr:     d.parameters(f),
			TypeParametersAttr: d.typeParameters(f),
			ReturnTypeAttr:     f.returns(),
			IsOptional:         d.flag(f, "isOptional", SchemaV1004),
			IsProtected:        d.flag(f, "isProtected", SchemaV1004),
			IsAbstract:         d.flag(f, "isAbstract", SchemaV1011),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindMethodSignature: func(d *decoder, f *fields) model.Item {
		item := &model.MethodSignature{
			Name:               f.string("name"),
			OverloadAttr:       f.overload(),
			ReleaseAttr:        f.release(),
			ParametersAttr:     d.parameters(f),
			TypeParametersAttr: d.typeParameters(f),
			ReturnTypeAttr:     f.returns(),
			IsOptional:         d.flag(f, "isOptional", SchemaV1004),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindProperty: func(d *decoder, f *fields) model.Item {
		item := &model.Property{
			Name:         f.string("name"),
			StaticAttr:   f.static(),
			ReleaseAttr:  f.release(),
			PropertyType: f.excerpt("propertyTypeTokenRange"),
			Initializer:  f.excerpt("initializerTokenRange"),
			IsOptional:   d.flag(f, "isOptional", SchemaV1004),
			IsProtected:  d.flag(f, "isProtected", SchemaV1004),
			IsReadonly:   d.flag(f, "isReadonly", SchemaV1011),
			IsAbstract:   d.flag(f, "isAbstract", SchemaV1011),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindPropertySignature: func(d *decoder, f *fields) model.Item {
		item := &model.PropertySignature{
			Name:         f.string("name"),
			ReleaseAttr:  f.release(),
			PropertyType: f.excerpt("propertyTypeTokenRange"),
			IsOptional:   d.flag(f, "isOptional", SchemaV1004),
			IsReadonly:   d.flag(f, "isReadonly", SchemaV1011),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindConstructor: func(d *decoder, f *fields) model.Item {
		item := &model.Constructor{
			OverloadAttr:   f.overload(),
			ReleaseAttr:    f.release(),
			ParametersAttr: d.parameters(f),
			IsProtected:    d.flag(f, "isProtected", SchemaV1004),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindFunction: func(d *decoder, f *fields) model.Item {
		item := &model.Function{
			Name:               f.string("name"),
			ExportAttr:         d.exported(f),
			OverloadAttr:       f.overload(),
			ReleaseAttr:        f.release(),
			ParametersAttr:     d.parameters(f),
			TypeParametersAttr: d.typeParameters(f),
			ReturnTypeAttr:     f.returns(),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindVariable: func(d *decoder, f *fields) model.Item {
		item := &model.Variable{
			Name:         f.string("name"),
			ExportAttr:   d.exported(f),
			ReleaseAttr:  f.release(),
			VariableType: f.excerpt("variableTypeTokenRange"),
			Initializer:  f.excerpt("initializerTokenRange"),
			IsReadonly:   d.flag(f, "isReadonly", SchemaV1011),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindTypeAlias: func(d *decoder, f *fields) model.Item {
		item := &model.TypeAlias{
			Name:               f.string("name"),
			ExportAttr:         d.exported(f),
			ReleaseAttr:        f.release(),
			TypeParametersAttr: d.typeParameters(f),
			Type:               f.excerpt("typeTokenRange"),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindCallSignature: func(d *decoder, f *fields) model.Item {
		item := &model.CallSignature{
			OverloadAttr:       f.overload(),
			ReleaseAttr:        f.release(),
			ParametersAttr:     d.parameters(f),
			TypeParametersAttr: d.typeParameters(f),
			ReturnTypeAttr:     f.returns(),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindConstructSignature: func(d *decoder, f *fields) model.Item {
		item := &model.ConstructSignature{
			OverloadAttr:       f.overload(),
			ReleaseAttr:        f.release(),
			ParametersAttr:     d.parameters(f),
			TypeParametersAttr: d.typeParameters(f),
			ReturnTypeAttr:     f.returns(),
		}
		f.declare(&item.Declaration)
		return item
	},
	model.KindIndexSignature: func(d *decoder, f *fields) model.Item {
		item := &model.IndexSignature{
			OverloadAttr:   f.overload(),
			ReleaseAttr:    f.release(),
			ParametersAttr: d.parameters(f),
			ReturnTypeAttr: f.returns(),
			IsReadonly:     d.flag(f, "isReadonly", SchemaV1011),
		}
		f.declare(&item.Declaration)
		return item
	},
}

func (d *decoder) decodePackage(document object, metadata *Metadata) (*model.Package, error) {
	f := &fields{object: document, path: "Package"}
	if kind := model.Kind(f.string("kind")); kind != model.KindPackage {
		return nil, corrupt(f.path, "expected %v root, but had %q", model.KindPackage, kind)
	}
	pkg := &model.Package{
		Name:          f.string("name"),
		ToolPackage:   metadata.ToolPackage,
		ToolVersion:   metadata.ToolVersion,
		SchemaVersion: metadata.SchemaVersion,
	}
	if pkg.Name == "" {
		return nil, corrupt(f.path, "package name is missing")
	}
	f.path = "Package:" + pkg.Name
	f.readTokens()
	f.declare(&pkg.Declaration)
	if d.version >= SchemaV1002 {
		meta := &fields{path: "metadata"}
		f.read("metadata", &meta.object)
		if meta.has("tsdocConfig") {
			pkg.TSDocConfig = string(meta.object["tsdocConfig"])
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	d.stored[pkg] = f.string("canonicalReference")
	d.items++
	if err := d.decodeMembers(pkg, f, 0); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (d *decoder) decodeItem(raw json.RawMessage, parentPath string, depth int) (model.Item, error) {
	if depth > d.config.MaxDepth {
		return nil, corrupt(parentPath, "members nested deeper than %d", d.config.MaxDepth)
	}
	f := &fields{path: parentPath}
	if err := json.Unmarshal(raw, &f.object); err != nil {
		return nil, corrupt(parentPath, "invalid member: %v", err)
	}
	kind := model.Kind(f.string("kind"))
	construct, ok := constructors[kind]
	if !ok {
		if f.err != nil {
			return nil, f.err
		}
		return nil, errors.WithDetails(ErrUnknownItemKind, "kind", string(kind), "path", parentPath)
	}
	f.path = parentPath + "/" + string(kind) + ":" + f.string("name")
	f.readTokens()
	item := construct(d, f)
	if f.err != nil {
		return nil, f.err
	}
	d.stored[item] = f.string("canonicalReference")
	d.items++
	if container, ok := item.(model.Container); ok {
		if err := d.decodeMembers(container, f, depth); err != nil {
			return nil, err
		}
	} else if f.has("members") {
		return nil, corrupt(f.path, "%v cannot have members", kind)
	}
	return item, nil
}

func (d *decoder) decodeMembers(container model.Container, f *fields, depth int) error {
	var members []json.RawMessage
	f.read("members", &members)
	if f.err != nil {
		return f.err
	}
	for i, raw := range members {
		member, err := d.decodeItem(raw, f.path, depth+1)
		if err != nil {
			return err
		}
		if err = container.AddMember(member); err != nil {
			return corrupt(f.path, "member %d: %v", i, err)
		}
	}
	return nil
}

// flag reads a boolean introduced by the given schema version, older documents leave it unset
func (d *decoder) flag(f *fields, name string, since int) bool {
	if d.version < since {
		return false
	}
	return f.bool(name)
}

// exported defaults to true for documents predating isExported
func (d *decoder) exported(f *fields) model.ExportAttr {
	if d.version < SchemaV1011 || !f.has("isExported") {
		return model.ExportAttr{IsExported: true}
	}
	return model.ExportAttr{IsExported: f.bool("isExported")}
}

func (d *decoder) parameters(f *fields) model.ParametersAttr {
	var params []parameter
	if !f.read("parameters", &params) {
		return model.ParametersAttr{}
	}
	ret := model.ParametersAttr{Parameters: make([]model.Parameter, 0, len(params))}
	for _, param := range params {
		ret.Parameters = append(ret.Parameters, model.Parameter{
			Name:       param.Name,
			Type:       f.tokenRange("parameterTypeTokenRange", param.TypeRange),
			IsOptional: d.version >= SchemaV1004 && param.IsOptional,
		})
	}
	return ret
}

func (d *decoder) typeParameters(f *fields) model.TypeParametersAttr {
	var params []typeParameter
	if d.version < SchemaV1001 || !f.read("typeParameters", &params) {
		return model.TypeParametersAttr{}
	}
	ret := model.TypeParametersAttr{TypeParameters: make([]model.TypeParameter, 0, len(params))}
	for _, param := range params {
		ret.TypeParameters = append(ret.TypeParameters, model.TypeParameter{
			Name:       param.Name,
			Constraint: f.tokenRange("constraintTokenRange", param.ConstraintRange),
			Default:    f.tokenRange("defaultTypeTokenRange", param.DefaultRange),
			IsOptional: d.version >= SchemaV1004 && param.IsOptional,
		})
	}
	return ret
}
