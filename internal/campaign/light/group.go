package light

// Group is an immutable, insertion-ordered set of sources in one category,
// addressable by id and by position.
type Group struct {
	name  string
	order []*Source
	byID  map[string]*Source
}

// NewGroup builds a group. A source whose id repeats an earlier one is dropped.
func NewGroup(name string, sources ...*Source) *Group {
	g := &Group{
		name:  name,
		order: make([]*Source, 0, len(sources)),
		byID:  make(map[string]*Source, len(sources)),
	}
	for _, s := range sources {
		if s == nil {
			continue
		}
		if _, dup := g.byID[s.ID()]; dup {
			continue
		}
		g.order = append(g.order, s)
		g.byID[s.ID()] = s
	}
	return g
}

// Name returns the category name.
func (g *Group) Name() string { return g.name }

// Len returns the number of sources.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.order)
}

// At returns the i-th source in load order.
func (g *Group) At(i int) (*Source, bool) {
	if g == nil || i < 0 || i >= len(g.order) {
		return nil, false
	}
	return g.order[i], true
}

// Get returns the source with the given id.
func (g *Group) Get(id string) (*Source, bool) {
	if g == nil {
		return nil, false
	}
	s, ok := g.byID[id]
	return s, ok
}

// Sources returns the sources in load order.
func (g *Group) Sources() []*Source {
	if g == nil {
		return nil
	}
	return append([]*Source(nil), g.order...)
}
