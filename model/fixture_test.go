package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/viant/apimodel/model"
)

// fixture holds the items of the test package by canonical reference
type fixture struct {
	model *model.Model
	pkg   *model.Package
	items map[string]model.Item
}

func (f *fixture) add(t *testing.T, container model.Container, ref string, item model.Item) {
	t.Helper()
	require.NoError(t, container.AddMember(item))
	f.items[ref] = item
}

// newFixture builds package lib:
//
//	class Widget { constructor(); render(); static create(); size; static count }
//	namespace Widget { var defaults }
//	interface Widget { id }
//	interface Callable { (); new (); [key]; invoke(); invoke(x) }
//	enum Color { Red, Green }
//	function parse(); function parse(x); const VERSION; type Handler
//	function internalHelper (not exported)
//	class C { f(); f(x) }
//	entry point lib/testing: class Fixture
func newFixture(t *testing.T) *fixture {
	f := &fixture{model: model.New(), items: map[string]model.Item{}}
	f.pkg = &model.Package{Name: "lib"}
	require.NoError(t, f.model.AddPackage(f.pkg))
	f.items["lib!"] = f.pkg

	main := &model.EntryPoint{}
	require.NoError(t, f.pkg.AddMember(main))

	widget := &model.Class{Name: "Widget"}
	widget.IsExported = true
	f.add(t, main, "lib!Widget:class", widget)
	f.add(t, widget, "lib!Widget:constructor(1)", &model.Constructor{OverloadAttr: model.OverloadAttr{OverloadIndex: 1}})
	f.add(t, widget, "lib!Widget#render:member(1)", &model.Method{Name: "render", OverloadAttr: model.OverloadAttr{OverloadIndex: 1}})
	f.add(t, widget, "lib!Widget.create:member(1)", &model.Method{Name: "create", StaticAttr: model.StaticAttr{IsStatic: true}, OverloadAttr: model.OverloadAttr{OverloadIndex: 1}})
	f.add(t, widget, "lib!Widget#size:member", &model.Property{Name: "size"})
	f.add(t, widget, "lib!Widget.count:member", &model.Property{Name: "count", StaticAttr: model.StaticAttr{IsStatic: true}})

	namespace := &model.Namespace{Name: "Widget"}
	namespace.IsExported = true
	f.add(t, main, "lib!Widget:namespace", namespace)
	defaults := &model.Variable{Name: "defaults"}
	defaults.IsExported = true
	f.add(t, namespace, "lib!Widget.defaults:var", defaults)

	widgetInterface := &model.Interface{Name: "Widget"}
	widgetInterface.IsExported = true
	f.add(t, main, "lib!Widget:interface", widgetInterface)
	f.add(t, widgetInterface, "lib!Widget#id:member", &model.PropertySignature{Name: "id"})

	callable := &model.Interface{Name: "Callable"}
	callable.IsExported = true
	f.add(t, main, "lib!Callable:interface", callable)
	f.add(t, callable, "lib!Callable:call(1)", &model.CallSignature{OverloadAttr: model.OverloadAttr{OverloadIndex: 1}})
	f.add(t, callable, "lib!Callable:new(1)", &model.ConstructSignature{OverloadAttr: model.OverloadAttr{OverloadIndex: 1}})
	f.add(t, callable, "lib!Callable:index(1)", &model.IndexSignature{OverloadAttr: model.OverloadAttr{OverloadIndex: 1}})
	f.add(t, callable, "lib!Callable#invoke:member(1)", &model.MethodSignature{Name: "invoke", OverloadAttr: model.OverloadAttr{OverloadIndex: 1}})
	f.add(t, callable, "lib!Callable#invoke:member(2)", &model.MethodSignature{Name: "invoke", OverloadAttr: model.OverloadAttr{OverloadIndex: 2}})

	color := &model.Enum{Name: "Color"}
	color.IsExported = true
	f.add(t, main, "lib!Color:enum", color)
	f.add(t, color, "lib!Color.Red:member", &model.EnumMember{Name: "Red"})
	f.add(t, color, "lib!Color.Green:member", &model.EnumMember{Name: "Green"})

	for i := 1; i <= 2; i++ {
		parse := &model.Function{Name: "parse"}
		parse.IsExported = true
		parse.OverloadIndex = i
		ref := "lib!parse:function(1)"
		if i == 2 {
			ref = "lib!parse:function(2)"
		}
		f.add(t, main, ref, parse)
	}
	version := &model.Variable{Name: "VERSION", IsReadonly: true}
	version.IsExported = true
	f.add(t, main, "lib!VERSION:var", version)
	handler := &model.TypeAlias{Name: "Handler"}
	handler.IsExported = true
	f.add(t, main, "lib!Handler:type", handler)
	f.add(t, main, "lib!~internalHelper:function(1)", &model.Function{Name: "internalHelper"})

	c := &model.Class{Name: "C"}
	c.IsExported = true
	f.add(t, main, "lib!C:class", c)
	f.add(t, c, "lib!C#f:member(1)", &model.Method{Name: "f", OverloadAttr: model.OverloadAttr{OverloadIndex: 1}})
	f.add(t, c, "lib!C#f:member(2)", &model.Method{Name: "f", OverloadAttr: model.OverloadAttr{OverloadIndex: 2}})

	testingEntry := &model.EntryPoint{Name: "testing"}
	f.add(t, f.pkg, "lib/testing!", testingEntry)
	fixtureClass := &model.Class{Name: "Fixture"}
	fixtureClass.IsExported = true
	f.add(t, testingEntry, "lib/testing!Fixture:class", fixtureClass)
	return f
}
