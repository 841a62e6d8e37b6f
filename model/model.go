package model

import (
	"iter"

	"gitlab.com/tozd/go/errors"
)

// Model owns loaded packages
type Model struct {
	packages   []*Package
	packageMap map[string]int // position
}

// New creates an empty model
func New() *Model {
	return &Model{packageMap: make(map[string]int)}
}

// AddPackage adds a package, package names are unique within a model
func (m *Model) AddPackage(pkg *Package) error {
	if pkg.Parent() != nil {
		return errors.WithDetails(ErrAlreadyAttached, "package", pkg.Name)
	}
	if _, ok := m.packageMap[pkg.Name]; ok {
		return errors.WithDetails(ErrDuplicateKey, "key", pkg.ContainerKey())
	}
	m.packages = append(m.packages, pkg)
	m.packageMap[pkg.Name] = len(m.packages) - 1
	return nil
}

// Packages returns packages in load order
func (m *Model) Packages() []*Package {
	return m.packages
}

// Package returns package by name
func (m *Model) Package(name string) *Package {
	if idx, ok := m.packageMap[name]; ok && idx < len(m.packages) {
		return m.packages[idx]
	}
	return nil
}

// Items returns every item of every package in pre-order
func (m *Model) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, pkg := range m.packages {
			if !walk(pkg, yield) {
				return
			}
		}
	}
}

// Walk visits item and its descendants in pre-order until visit returns false
func Walk(item Item, visit func(Item) bool) {
	walk(item, visit)
}

func walk(item Item, visit func(Item) bool) bool {
	if !visit(item) {
		return false
	}
	container, ok := item.(Container)
	if !ok {
		return true
	}
	for _, member := range container.Members() {
		if !walk(member, visit) {
			return false
		}
	}
	return true
}
