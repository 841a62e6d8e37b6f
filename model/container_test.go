package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/apimodel/model"
	"gitlab.com/tozd/go/errors"
)

func TestContainer_AddMember(t *testing.T) {
	class := &model.Class{Name: "Widget"}
	render := &model.Method{Name: "render"}
	require.NoError(t, class.AddMember(render))
	assert.Equal(t, model.Item(class), render.Parent())
	assert.Equal(t, "render|Method|instance|1", render.ContainerKey())

	t.Run("duplicate key leaves container unchanged", func(t *testing.T) {
		duplicate := &model.Method{Name: "render", OverloadAttr: model.OverloadAttr{OverloadIndex: 1}}
		err := class.AddMember(duplicate)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrDuplicateKey))
		assert.Nil(t, duplicate.Parent())
		assert.Len(t, class.Members(), 1)
		assert.Len(t, class.FindMembersByName("render"), 1)
	})

	t.Run("static and instance members do not collide", func(t *testing.T) {
		static := &model.Method{Name: "render", StaticAttr: model.StaticAttr{IsStatic: true}}
		require.NoError(t, class.AddMember(static))
		assert.Equal(t, "render|Method|static|1", static.ContainerKey())
		assert.Len(t, class.FindMembersByName("render"), 2)
	})

	t.Run("attached item is rejected", func(t *testing.T) {
		other := &model.Class{Name: "Other"}
		err := other.AddMember(render)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrAlreadyAttached))
		assert.Equal(t, model.Item(class), render.Parent())
		assert.Empty(t, other.Members())
	})

	t.Run("lookup by key", func(t *testing.T) {
		item, ok := class.TryGetMemberByKey("render|Method|instance|1")
		require.True(t, ok)
		assert.Same(t, render, item)
		_, ok = class.TryGetMemberByKey("render|Method|instance|2")
		assert.False(t, ok)
	})
}

func TestContainer_MergedNames(t *testing.T) {
	entryPoint := &model.EntryPoint{}
	require.NoError(t, entryPoint.AddMember(&model.Class{Name: "Widget"}))
	require.NoError(t, entryPoint.AddMember(&model.Interface{Name: "Widget"}))
	require.NoError(t, entryPoint.AddMember(&model.Namespace{Name: "Widget"}))
	err := entryPoint.AddMember(&model.Class{Name: "Widget"})
	assert.True(t, errors.Is(err, model.ErrDuplicateKey))
	assert.Len(t, entryPoint.FindMembersByName("Widget"), 3)
}

func TestContainer_Order(t *testing.T) {
	enum := &model.Enum{Name: "Color"}
	names := []string{"Red", "Green", "Blue", "Alpha", "Black"}
	for _, name := range names {
		require.NoError(t, enum.AddMember(&model.EnumMember{Name: name}))
	}
	var actual []string
	for _, member := range enum.Members() {
		actual = append(actual, member.DisplayName())
	}
	assert.Equal(t, names, actual)
}

func TestContainer_MembersOfKind(t *testing.T) {
	class := &model.Class{Name: "Widget"}
	require.NoError(t, class.AddMember(&model.Property{Name: "size"}))
	require.NoError(t, class.AddMember(&model.Method{Name: "render"}))
	require.NoError(t, class.AddMember(&model.Constructor{}))
	require.NoError(t, class.AddMember(&model.Method{Name: "hide"}))

	var methods []string
	for member := range class.MembersOfKind(model.KindMethod) {
		methods = append(methods, member.DisplayName())
	}
	assert.Equal(t, []string{"render", "hide"}, methods)

	count := 0
	for range class.MembersOfKind(model.KindEnumMember) {
		count++
	}
	assert.Equal(t, 0, count)

	for member := range class.MembersOfKind(model.KindMethod) {
		assert.Equal(t, "render", member.DisplayName())
		break
	}
}

func TestModel_AddPackage(t *testing.T) {
	m := model.New()
	require.NoError(t, m.AddPackage(&model.Package{Name: "lib"}))
	err := m.AddPackage(&model.Package{Name: "lib"})
	assert.True(t, errors.Is(err, model.ErrDuplicateKey))
	assert.NotNil(t, m.Package("lib"))
	assert.Nil(t, m.Package("other"))
	assert.Len(t, m.Packages(), 1)
}

func TestContainer_AddMember_Rejected(t *testing.T) {
	pkg := &model.Package{Name: "lib"}
	entryPoint := &model.EntryPoint{}
	require.NoError(t, pkg.AddMember(entryPoint))
	outer := &model.Namespace{Name: "Outer"}
	require.NoError(t, entryPoint.AddMember(outer))
	inner := &model.Namespace{Name: "Inner"}
	require.NoError(t, outer.AddMember(inner))
	class := &model.Class{Name: "Widget"}
	require.NoError(t, inner.AddMember(class))

	detached := &model.Namespace{Name: "Detached"}

	tests := []struct {
		description string
		container   model.Container
		member      model.Item
		expected    error
	}{
		{description: "item under itself", container: detached, member: detached, expected: model.ErrCycle},
		{description: "package under its own class", container: class, member: pkg, expected: model.ErrMemberKind},
		{description: "package under a namespace", container: detached, member: &model.Package{Name: "other"}, expected: model.ErrMemberKind},
		{description: "method under a namespace", container: detached, member: &model.Method{Name: "render"}, expected: model.ErrMemberKind},
		{description: "enum member under a class", container: class, member: &model.EnumMember{Name: "Red"}, expected: model.ErrMemberKind},
		{description: "class under an enum", container: &model.Enum{Name: "Color"}, member: &model.Class{Name: "Color"}, expected: model.ErrMemberKind},
		{description: "property signature under a class", container: class, member: &model.PropertySignature{Name: "id"}, expected: model.ErrMemberKind},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			before := len(tc.container.Members())
			err := tc.container.AddMember(tc.member)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.expected), err.Error())
			assert.Nil(t, tc.member.Parent())
			assert.Len(t, tc.container.Members(), before)
		})
	}

	t.Run("ancestor under its descendant", func(t *testing.T) {
		root := &model.Namespace{Name: "Root"}
		child := &model.Namespace{Name: "Child"}
		grandChild := &model.Namespace{Name: "GrandChild"}
		require.NoError(t, root.AddMember(child))
		require.NoError(t, child.AddMember(grandChild))
		err := grandChild.AddMember(root)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrCycle))
		assert.Nil(t, root.Parent())
		assert.Empty(t, grandChild.Members())
		_, err = model.CanonicalReference(grandChild)
		assert.NoError(t, err)
	})
}

func TestKind_CanContain(t *testing.T) {
	assert.True(t, model.KindPackage.CanContain(model.KindEntryPoint))
	assert.True(t, model.KindNamespace.CanContain(model.KindNamespace))
	assert.True(t, model.KindInterface.CanContain(model.KindIndexSignature))
	assert.False(t, model.KindEntryPoint.CanContain(model.KindPackage))
	assert.False(t, model.KindMethod.CanContain(model.KindProperty))
	assert.False(t, model.KindClass.CanContain(model.KindPackage))
}
