// Package tokenprop defines token property schemas: the named, ordered
// property lists that describe a category ("type") of game token.
package tokenprop

// Definition describes one token property. Definitions are values; a schema
// changes only by being replaced as a whole.
type Definition struct {
	Name      string
	ShortName string
	// ShowOnStatSheet marks high-priority properties shown on the stat sheet.
	ShowOnStatSheet bool
	OwnerOnly       bool
	GMOnly          bool
	// DefaultValue is empty when the property has no default.
	DefaultValue string
}

// HasDefault reports whether the property carries a default value.
func (d Definition) HasDefault() bool {
	return d.DefaultValue != ""
}

// Label returns the short name when present and the full name otherwise.
func (d Definition) Label() string {
	if d.ShortName != "" {
		return d.ShortName
	}
	return d.Name
}
