package reference

// Meaning disambiguates same-named siblings by their grammatical role
type Meaning string

const (
	MeaningClass              Meaning = "class"
	MeaningInterface          Meaning = "interface"
	MeaningTypeAlias          Meaning = "type"
	MeaningEnum               Meaning = "enum"
	MeaningNamespace          Meaning = "namespace"
	MeaningFunction           Meaning = "function"
	MeaningVariable           Meaning = "var"
	MeaningConstructor        Meaning = "constructor"
	MeaningMember             Meaning = "member"
	MeaningCallSignature      Meaning = "call"
	MeaningConstructSignature Meaning = "new"
	MeaningIndexSignature     Meaning = "index"
)

var meanings = map[Meaning]bool{
	MeaningClass:              true,
	MeaningInterface:          true,
	MeaningTypeAlias:          true,
	MeaningEnum:               true,
	MeaningNamespace:          true,
	MeaningFunction:           true,
	MeaningVariable:           true,
	MeaningConstructor:        true,
	MeaningMember:             true,
	MeaningCallSignature:      true,
	MeaningConstructSignature: true,
	MeaningIndexSignature:     true,
}

// IsValid returns true for a known meaning
func (m Meaning) IsValid() bool {
	return meanings[m]
}

// IsSignature returns true for meanings of unnamed signature declarations,
// these are looked up among the members of the preceding step
func (m Meaning) IsSignature() bool {
	switch m {
	case MeaningConstructor, MeaningCallSignature, MeaningConstructSignature, MeaningIndexSignature:
		return true
	}
	return false
}
