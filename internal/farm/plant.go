package farm

// PlantKind is one of the fixed set of crops that can be sown.
type PlantKind int

const (
	PlantA PlantKind = iota
	PlantB
	PlantC
)

// PlantKinds lists every kind, in the order random sowing draws from.
var PlantKinds = [...]PlantKind{PlantA, PlantB, PlantC}

// String returns the display name of the kind.
func (k PlantKind) String() string {
	switch k {
	case PlantA:
		return "Plant A"
	case PlantB:
		return "Plant B"
	case PlantC:
		return "Plant C"
	default:
		return "Plant ?"
	}
}

// Glyph returns the single-letter board marker of the kind.
func (k PlantKind) Glyph() rune {
	switch k {
	case PlantA:
		return 'A'
	case PlantB:
		return 'B'
	case PlantC:
		return 'C'
	default:
		return '?'
	}
}

// Plant occupies a single cell. Level starts at 1 and only grows.
type Plant struct {
	Kind  PlantKind
	Level int
}

// Mature reports whether the plant has reached the given growth level.
func (p Plant) Mature(level int) bool {
	return p.Level >= level
}
