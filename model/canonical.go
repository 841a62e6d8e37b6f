package model

import (
	"github.com/viant/apimodel/reference"
	"gitlab.com/tozd/go/errors"
)

// CanonicalReference returns canonical reference text of the item
func CanonicalReference(item Item) (string, error) {
	ref, err := ReferenceOf(item)
	if err != nil {
		return "", err
	}
	return ref.String(), nil
}

// ReferenceOf returns canonical reference of the item.
// The result is cached once the item chain is rooted at a package, a recomputation yields the same value.
func ReferenceOf(item Item) (*reference.Reference, error) {
	decl := item.declaration()
	if ref := decl.ref.Load(); ref != nil {
		return ref, nil
	}
	ref, err := buildReference(item)
	if err != nil {
		return nil, err
	}
	if !ref.Detached {
		decl.ref.Store(ref)
	}
	return ref, nil
}

func buildReference(item Item) (*reference.Reference, error) {
	if pkg, ok := item.(*Package); ok {
		if pkg.Name == "" {
			return nil, errors.WithDetails(ErrMalformedTree, "kind", KindPackage, "reason", "package without name")
		}
		return reference.New(pkg.Name), nil
	}
	base := reference.NewDetached()
	if parent := item.Parent(); parent != nil {
		var err error
		if base, err = ReferenceOf(parent); err != nil {
			return nil, err
		}
	}
	kind := item.Kind()
	switch {
	case kind == KindEntryPoint:
		if name := item.DisplayName(); name != "" && !base.Detached {
			return base.WithPackage(base.Package + "/" + name), nil
		}
		return base, nil
	case kind.IsSignature():
		ret := base.WithMeaning(kind.Meaning())
		if overloadable, ok := item.(Overloadable); ok {
			ret = ret.WithOverloadIndex(overloadable.Overload())
		}
		return ret, nil
	}
	name := item.DisplayName()
	if name == "" {
		return nil, errors.WithDetails(ErrMalformedTree, "kind", kind, "parent", base.String(), "reason", "declaration without name")
	}
	ret := base.AddStep(navigationOf(item), name).WithMeaning(kind.Meaning())
	if overloadable, ok := item.(Overloadable); ok {
		ret = ret.WithOverloadIndex(overloadable.Overload())
	}
	return ret, nil
}

// navigationOf returns the step reaching the item from its container
func navigationOf(item Item) reference.Navigation {
	switch actual := item.(type) {
	case Staticable:
		if actual.Static() {
			return reference.Exports
		}
		return reference.Members
	case *MethodSignature, *PropertySignature:
		return reference.Members
	case Exportable:
		if actual.Exported() {
			return reference.Exports
		}
		return reference.Locals
	}
	return reference.Exports
}
