package reference

// Navigation describes how a name is reached from its container
type Navigation string

const (
	// Exports navigates to an exported symbol, a static class member or an enum member
	Exports Navigation = "."
	// Members navigates to an instance member of a class or interface
	Members Navigation = "#"
	// Locals navigates to a declaration that is not exported from its container
	Locals Navigation = "~"
)

// IsValid returns true for known navigation steps
func (n Navigation) IsValid() bool {
	switch n {
	case Exports, Members, Locals:
		return true
	}
	return false
}

// Name returns a readable name of the navigation step
func (n Navigation) Name() string {
	switch n {
	case Exports:
		return "Exports"
	case Members:
		return "Members"
	case Locals:
		return "Locals"
	}
	return "Unknown"
}

func navigationOf(c byte) (Navigation, bool) {
	switch c {
	case '.':
		return Exports, true
	case '#':
		return Members, true
	case '~':
		return Locals, true
	}
	return "", false
}
