package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/apimodel/reference"
)

// DiagnosticOverloadDefaulted is reported when a reference to overloaded items omits the overload index
const DiagnosticOverloadDefaulted = "overload index omitted, defaulted to 1"

// Resolution is a resolved item with non fatal diagnostics
type Resolution struct {
	Item        Item
	Diagnostics []string
}

// Resolve parses reference text and resolves it, relative references start from the supplied item
func (m *Model) Resolve(text string, from Item) (*Resolution, error) {
	ref, err := reference.Parse(text)
	if err != nil {
		return nil, &ResolveError{Reference: text, Err: err}
	}
	return m.ResolveReference(ref, from)
}

// ResolveReference walks reference steps, then narrows remaining candidates by meaning and overload index
func (m *Model) ResolveReference(ref *reference.Reference, from Item) (*Resolution, error) {
	text := ref.String()
	if ref.Detached {
		return nil, newResolveError(text, nil, ErrMalformedReferenceSyntax, "detached reference is display only")
	}
	var scopes []Item
	if ref.IsRelative() {
		if from == nil {
			return nil, newResolveError(text, nil, ErrMalformedReferenceSyntax, "relative reference without a starting item")
		}
		for scope := from; scope != nil; scope = scope.Parent() {
			scopes = append(scopes, scope)
		}
	} else {
		pkg, entryPoint := m.lookupEntryPoint(ref.Package)
		if entryPoint == nil {
			return nil, newResolveError(text, nil, ErrStepNotFound, fmt.Sprintf("package %q not found", ref.Package))
		}
		if len(ref.Steps) == 0 && ref.Meaning == "" && ref.OverloadIndex == 0 {
			if entryPoint.Name == "" {
				return &Resolution{Item: pkg}, nil
			}
			return &Resolution{Item: entryPoint}, nil
		}
		scopes = []Item{entryPoint}
	}

	var candidates []Item
	var firstErr error
	for _, scope := range scopes {
		found, err := walkSteps(text, ref, scope)
		if err == nil {
			candidates = found
			break
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if candidates == nil {
		return nil, firstErr
	}
	matched := ref.Prefix(len(ref.Steps))
	switch {
	case ref.Meaning.IsSignature():
		kind := signatureKind(ref.Meaning)
		var signatures []Item
		for _, candidate := range candidates {
			if container, ok := candidate.(Container); ok {
				for member := range container.MembersOfKind(kind) {
					signatures = append(signatures, member)
				}
			}
		}
		if len(signatures) == 0 {
			return nil, newResolveError(text, matched, ErrStepNotFound, fmt.Sprintf("no %s signature", ref.Meaning))
		}
		candidates = signatures
	case ref.Meaning != "":
		var filtered []Item
		for _, candidate := range candidates {
			if candidate.Kind().Meaning() == ref.Meaning {
				filtered = append(filtered, candidate)
			}
		}
		if len(filtered) == 0 {
			return nil, newResolveError(text, matched, ErrStepNotFound, fmt.Sprintf("no candidate with meaning %q", ref.Meaning))
		}
		candidates = filtered
	}
	return selectCandidate(text, ref, matched, candidates)
}

// walkSteps follows every candidate sharing a step name, i.e. a class merged with a namespace
func walkSteps(text string, ref *reference.Reference, scope Item) ([]Item, error) {
	candidates := []Item{scope}
	for i, step := range ref.Steps {
		var next []Item
		for _, candidate := range candidates {
			container, ok := candidate.(Container)
			if !ok {
				continue
			}
			for _, member := range container.FindMembersByName(step.Name) {
				if member.Kind().IsSignature() || navigationOf(member) != step.Navigation {
					continue
				}
				next = append(next, member)
			}
		}
		if len(next) == 0 {
			detail := fmt.Sprintf("no member %q reachable through %s", step.Name, step.Navigation.Name())
			return nil, newResolveError(text, ref.Prefix(i), ErrStepNotFound, detail)
		}
		candidates = next
	}
	return candidates, nil
}

func selectCandidate(text string, ref *reference.Reference, matched *reference.Reference, candidates []Item) (*Resolution, error) {
	if ref.Meaning == "" {
		if meanings := distinctMeanings(candidates); len(meanings) > 1 {
			return nil, newResolveError(text, matched, ErrAmbiguousMeaning, "candidates: "+strings.Join(meanings, ", "))
		}
	}
	ret := &Resolution{}
	overloaded := false
	for _, candidate := range candidates {
		if _, ok := candidate.(Overloadable); ok {
			overloaded = true
			break
		}
	}
	switch {
	case overloaded:
		index := ref.OverloadIndex
		if index == 0 {
			index = 1
			ret.Diagnostics = append(ret.Diagnostics, DiagnosticOverloadDefaulted)
		}
		var filtered []Item
		for _, candidate := range candidates {
			if overloadable, ok := candidate.(Overloadable); ok && overloadable.Overload() == index {
				filtered = append(filtered, candidate)
			}
		}
		if len(filtered) == 0 {
			return nil, newResolveError(text, matched, ErrStepNotFound, fmt.Sprintf("overload %d not found", index))
		}
		candidates = filtered
	case ref.OverloadIndex > 0:
		return nil, newResolveError(text, matched, ErrStepNotFound, fmt.Sprintf("overload %d requested for a declaration without overloads", ref.OverloadIndex))
	}
	if len(candidates) > 1 {
		return nil, newResolveError(text, matched, ErrAmbiguousMeaning, fmt.Sprintf("%d candidates remain", len(candidates)))
	}
	ret.Item = candidates[0]
	return ret, nil
}

func distinctMeanings(candidates []Item) []string {
	seen := map[string]bool{}
	var result []string
	for _, candidate := range candidates {
		meaning := string(candidate.Kind().Meaning())
		if !seen[meaning] {
			seen[meaning] = true
			result = append(result, meaning)
		}
	}
	sort.Strings(result)
	return result
}

func signatureKind(meaning reference.Meaning) Kind {
	switch meaning {
	case reference.MeaningConstructor:
		return KindConstructor
	case reference.MeaningCallSignature:
		return KindCallSignature
	case reference.MeaningConstructSignature:
		return KindConstructSignature
	case reference.MeaningIndexSignature:
		return KindIndexSignature
	}
	return ""
}

// lookupEntryPoint matches package part, the text after the package name is an entry point import path
func (m *Model) lookupEntryPoint(pkgPart string) (*Package, *EntryPoint) {
	if pkg := m.Package(pkgPart); pkg != nil {
		return pkg, pkg.EntryPoint("")
	}
	for _, pkg := range m.packages {
		if importPath, ok := strings.CutPrefix(pkgPart, pkg.Name+"/"); ok {
			if entryPoint := pkg.EntryPoint(importPath); entryPoint != nil {
				return pkg, entryPoint
			}
		}
	}
	return nil, nil
}
