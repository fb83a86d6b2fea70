package tokenprop

import "strings"

// DefaultType names the built-in schema.
const DefaultType = "Basic"

// Schema is an immutable ordered list of property definitions.
type Schema struct {
	props []Definition
}

// NewSchema copies defs into a new schema.
func NewSchema(defs ...Definition) Schema {
	return Schema{props: append([]Definition(nil), defs...)}
}

// Len returns the number of properties.
func (s Schema) Len() int {
	return len(s.props)
}

// At returns the i-th property.
func (s Schema) At(i int) Definition {
	return s.props[i]
}

// Properties returns a copy of the ordered property list.
func (s Schema) Properties() []Definition {
	return append([]Definition(nil), s.props...)
}

// Lookup finds a property by name, case-insensitively, falling back to the
// short name.
func (s Schema) Lookup(name string) (Definition, bool) {
	for _, p := range s.props {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	for _, p := range s.props {
		if p.ShortName != "" && strings.EqualFold(p.ShortName, name) {
			return p, true
		}
	}
	return Definition{}, false
}

// Equal reports whether both schemas hold the same definitions in order.
func (s Schema) Equal(other Schema) bool {
	if len(s.props) != len(other.props) {
		return false
	}
	for i := range s.props {
		if s.props[i] != other.props[i] {
			return false
		}
	}
	return true
}

// DefaultSchema returns the built-in "Basic" schema.
func DefaultSchema() Schema {
	return NewSchema(
		Definition{Name: "Strength", ShortName: "Str"},
		Definition{Name: "Dexterity", ShortName: "Dex"},
		Definition{Name: "Constitution", ShortName: "Con"},
		Definition{Name: "Intelligence", ShortName: "Int"},
		Definition{Name: "Wisdom", ShortName: "Wis"},
		Definition{Name: "Charisma", ShortName: "Char"},
		Definition{Name: "HP", ShowOnStatSheet: true, OwnerOnly: true},
		Definition{Name: "AC", ShowOnStatSheet: true, OwnerOnly: true},
		Definition{Name: "Defense", ShortName: "Def"},
		Definition{Name: "Movement", ShortName: "Mov"},
		Definition{Name: "Elevation", ShortName: "Elv", OwnerOnly: true, DefaultValue: "0"},
		Definition{Name: "Description", ShortName: "Des"},
	)
}

// Defaults returns the built-in schemas keyed by token type.
func Defaults() map[string]Schema {
	return map[string]Schema{DefaultType: DefaultSchema()}
}
