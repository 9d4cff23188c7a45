package viewer

import (
	"github.com/Faultbox/hexdrape/pkg/hexgrid"
)

// Selection tracks the hovered cell and the two endpoints of a route.
type Selection struct {
	finder *hexgrid.PathFinder

	Hovered *hexgrid.Cell
	Start   *hexgrid.Cell
	Goal    *hexgrid.Cell
	Path    []*hexgrid.Cell
}

// NewSelection creates a selection that routes with finder.
func NewSelection(finder *hexgrid.PathFinder) *Selection {
	return &Selection{finder: finder}
}

// Click picks c as the next endpoint. The first click sets the start, the
// second sets the goal and computes the path, and a third starts over.
// Clicking outside the grid clears everything.
func (s *Selection) Click(c *hexgrid.Cell) {
	switch {
	case c == nil:
		s.Clear()
	case s.Start == nil || s.Goal != nil:
		s.Start, s.Goal, s.Path = c, nil, nil
	default:
		s.Goal = c
		s.Path = s.finder.FindPath(s.Start.Coord, s.Goal.Coord)
	}
}

// Clear drops both endpoints and the path.
func (s *Selection) Clear() {
	s.Start, s.Goal, s.Path = nil, nil, nil
}
