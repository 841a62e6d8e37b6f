package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/apimodel/model"
	"gitlab.com/tozd/go/errors"
)

func TestModel_Resolve_RoundTrip(t *testing.T) {
	f := newFixture(t)
	for item := range f.model.Items() {
		if entryPoint, ok := item.(*model.EntryPoint); ok && entryPoint.Name == "" {
			continue
		}
		ref, err := model.CanonicalReference(item)
		require.NoError(t, err)
		resolution, err := f.model.Resolve(ref, nil)
		require.NoError(t, err, ref)
		assert.Same(t, item, resolution.Item, ref)
		assert.Empty(t, resolution.Diagnostics, ref)
	}
}

func TestModel_Resolve(t *testing.T) {
	tests := []struct {
		description string
		input       string
		from        string
		expected    string
		diagnostics []string
	}{
		{
			description: "overload 1",
			input:       "lib!C#f:member(1)",
			expected:    "lib!C#f:member(1)",
		},
		{
			description: "overload 2",
			input:       "lib!C#f:member(2)",
			expected:    "lib!C#f:member(2)",
		},
		{
			description: "omitted overload defaults to 1",
			input:       "lib!C#f:member",
			expected:    "lib!C#f:member(1)",
			diagnostics: []string{model.DiagnosticOverloadDefaulted},
		},
		{
			description: "omitted meaning with single candidate",
			input:       "lib!Color.Red",
			expected:    "lib!Color.Red:member",
		},
		{
			description: "static member through merged class and namespace",
			input:       "lib!Widget.create:member(1)",
			expected:    "lib!Widget.create:member(1)",
		},
		{
			description: "namespace member through merged class and namespace",
			input:       "lib!Widget.defaults",
			expected:    "lib!Widget.defaults:var",
		},
		{
			description: "interface member merged with class",
			input:       "lib!Widget#id",
			expected:    "lib!Widget#id:member",
		},
		{
			description: "constructor",
			input:       "lib!Widget:constructor",
			expected:    "lib!Widget:constructor(1)",
			diagnostics: []string{model.DiagnosticOverloadDefaulted},
		},
		{
			description: "index signature",
			input:       "lib!Callable:index(1)",
			expected:    "lib!Callable:index(1)",
		},
		{
			description: "package",
			input:       "lib!",
			expected:    "lib!",
		},
		{
			description: "secondary entry point",
			input:       "lib/testing!Fixture:class",
			expected:    "lib/testing!Fixture:class",
		},
		{
			description: "relative sibling member",
			input:       "#size:member",
			from:        "lib!Widget#render:member(1)",
			expected:    "lib!Widget#size:member",
		},
		{
			description: "relative reference searches enclosing scopes",
			input:       "Color.Green",
			from:        "lib!Widget#render:member(1)",
			expected:    "lib!Color.Green:member",
		},
		{
			description: "relative constructor",
			input:       ":constructor(1)",
			from:        "lib!Widget:class",
			expected:    "lib!Widget:constructor(1)",
		},
	}

	f := newFixture(t)
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			var from model.Item
			if tc.from != "" {
				from = f.items[tc.from]
				require.NotNil(t, from)
			}
			resolution, err := f.model.Resolve(tc.input, from)
			require.NoError(t, err)
			assert.Same(t, f.items[tc.expected], resolution.Item)
			assert.Equal(t, tc.diagnostics, resolution.Diagnostics)
		})
	}
}

func TestModel_Resolve_Errors(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    error
		matched     string
	}{
		{
			description: "malformed syntax",
			input:       "lib!Widget#",
			expected:    model.ErrMalformedReferenceSyntax,
		},
		{
			description: "detached placeholder",
			input:       "(parent)#render:member(1)",
			expected:    model.ErrMalformedReferenceSyntax,
		},
		{
			description: "unknown package",
			input:       "other!Widget:class",
			expected:    model.ErrStepNotFound,
		},
		{
			description: "missing member keeps matched prefix",
			input:       "lib!Widget#missing:member",
			expected:    model.ErrStepNotFound,
			matched:     "lib!Widget",
		},
		{
			description: "instance method through exports",
			input:       "lib!Widget.render:member(1)",
			expected:    model.ErrStepNotFound,
			matched:     "lib!Widget",
		},
		{
			description: "static method through members",
			input:       "lib!Widget#create:member(1)",
			expected:    model.ErrStepNotFound,
			matched:     "lib!Widget",
		},
		{
			description: "exported name through locals",
			input:       "lib!~parse:function(1)",
			expected:    model.ErrStepNotFound,
			matched:     "lib!",
		},
		{
			description: "merged name without meaning",
			input:       "lib!Widget",
			expected:    model.ErrAmbiguousMeaning,
			matched:     "lib!Widget",
		},
		{
			description: "meaning mismatch",
			input:       "lib!Color:class",
			expected:    model.ErrStepNotFound,
			matched:     "lib!Color",
		},
		{
			description: "missing overload",
			input:       "lib!C#f:member(3)",
			expected:    model.ErrStepNotFound,
			matched:     "lib!C#f",
		},
		{
			description: "overload on declaration without overloads",
			input:       "lib!VERSION:var(1)",
			expected:    model.ErrStepNotFound,
			matched:     "lib!VERSION",
		},
		{
			description: "relative reference without starting item",
			input:       "#render",
			expected:    model.ErrMalformedReferenceSyntax,
		},
	}

	f := newFixture(t)
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			resolution, err := f.model.Resolve(tc.input, nil)
			require.Error(t, err)
			assert.Nil(t, resolution)
			assert.True(t, errors.Is(err, tc.expected), err.Error())
			var resolveErr *model.ResolveError
			require.True(t, errors.As(err, &resolveErr))
			assert.Equal(t, tc.matched, resolveErr.Matched)
		})
	}
}

func TestModel_Resolve_Concurrent(t *testing.T) {
	f := newFixture(t)
	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			for ref, item := range f.items {
				resolution, err := f.model.Resolve(ref, nil)
				done <- err == nil && resolution.Item == item
			}
		}()
	}
	for i := 0; i < 8*len(f.items); i++ {
		assert.True(t, <-done)
	}
}
