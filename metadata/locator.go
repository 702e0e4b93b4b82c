package metadata

// Location is a column's physical position: the group that holds it and its
// index within that group.
type Location struct {
	Group  int
	Column int
}

// Locator maps column names to locations. Build one per metadata load; it is
// read-only afterwards and safe for concurrent use.
type Locator struct {
	byName map[string]Location
}

// NewLocator builds the name index. Duplicate names keep the first
// occurrence in group-then-column order.
func NewLocator(m *Metadata) *Locator {
	byName := make(map[string]Location)
	for gi, g := range m.Groups {
		for ci, col := range g.Columns {
			if _, exists := byName[col.Name]; exists {
				continue
			}
			byName[col.Name] = Location{Group: gi, Column: ci}
		}
	}
	return &Locator{byName: byName}
}

// Locate returns the location of the named column. The empty name is never a
// valid column.
func (l *Locator) Locate(name string) (Location, error) {
	if name == "" {
		return Location{}, &ErrColumnNotFound{Column: name}
	}
	loc, ok := l.byName[name]
	if !ok {
		return Location{}, &ErrColumnNotFound{Column: name}
	}
	return loc, nil
}

// SameGroup locates every name and checks that all of them live in one
// group. It returns that group's index. This is the capability check run
// before any multi-column query executes.
func (l *Locator) SameGroup(names []string) (int, error) {
	if len(names) == 0 {
		return 0, ErrEmptyColumnSet
	}

	groups := make([]int, len(names))
	for i, name := range names {
		loc, err := l.Locate(name)
		if err != nil {
			return 0, err
		}
		groups[i] = loc.Group
	}

	for _, g := range groups[1:] {
		if g != groups[0] {
			return 0, &ErrCrossGroupQuery{Columns: names, Groups: groups}
		}
	}
	return groups[0], nil
}
