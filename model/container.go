package model

import (
	"iter"

	"gitlab.com/tozd/go/errors"
)

// members is an insertion ordered member collection indexed by container key and name
type members struct {
	list      []Item
	keyMap    map[string]int   // container key -> position
	nameMap   map[string][]int // display name -> positions
	kindCount map[Kind]int
}

func (m *members) add(owner Item, member Item) error {
	decl := member.declaration()
	if decl.parent != nil {
		return errors.WithDetails(ErrAlreadyAttached, "member", member.ContainerKey())
	}
	if !owner.Kind().CanContain(member.Kind()) {
		return errors.WithDetails(ErrMemberKind, "container", owner.Kind(), "member", member.Kind())
	}
	for ancestor := owner; ancestor != nil; ancestor = ancestor.Parent() {
		if ancestor == member {
			return errors.WithDetails(ErrCycle, "member", member.ContainerKey(), "container", owner.ContainerKey())
		}
	}
	key := member.ContainerKey()
	if _, ok := m.keyMap[key]; ok {
		return errors.WithDetails(ErrDuplicateKey, "key", key, "container", owner.ContainerKey())
	}
	if m.keyMap == nil {
		m.keyMap = make(map[string]int)
		m.nameMap = make(map[string][]int)
		m.kindCount = make(map[Kind]int)
	}
	m.list = append(m.list, member)
	idx := len(m.list) - 1
	m.keyMap[key] = idx
	name := member.DisplayName()
	m.nameMap[name] = append(m.nameMap[name], idx)
	m.kindCount[member.Kind()]++
	decl.parent = owner
	return nil
}

// Members returns members in declaration order, the returned slice must not be modified
func (m *members) Members() []Item {
	return m.list
}

// TryGetMemberByKey returns member with the container key
func (m *members) TryGetMemberByKey(key string) (Item, bool) {
	idx, ok := m.keyMap[key]
	if !ok {
		return nil, false
	}
	return m.list[idx], true
}

// FindMembersByName returns members with the name in declaration order
func (m *members) FindMembersByName(name string) []Item {
	positions := m.nameMap[name]
	if len(positions) == 0 {
		return nil
	}
	var result = make([]Item, 0, len(positions))
	for _, idx := range positions {
		result = append(result, m.list[idx])
	}
	return result
}

// MembersOfKind returns lazy view of members with the kind
func (m *members) MembersOfKind(kind Kind) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		if m.kindCount[kind] == 0 {
			return
		}
		for _, member := range m.list {
			if member.Kind() != kind {
				continue
			}
			if !yield(member) {
				return
			}
		}
	}
}
