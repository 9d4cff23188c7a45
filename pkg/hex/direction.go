package hex

// Direction names one of the six neighbors of a cell.
type Direction int

const (
	Top Direction = iota
	TopRight
	BottomRight
	Bottom
	BottomLeft
	TopLeft
)

// DirectionCount is the number of neighbors (and edges, and vertices) of a cell.
const DirectionCount = 6

// Directions lists every direction in winding order.
var Directions = [DirectionCount]Direction{Top, TopRight, BottomRight, Bottom, BottomLeft, TopLeft}

var offsets = [DirectionCount]Coord{
	Top:         {0, 2},
	TopRight:    {1, 1},
	BottomRight: {1, -1},
	Bottom:      {0, -2},
	BottomLeft:  {-1, -1},
	TopLeft:     {-1, 1},
}

var directionNames = [DirectionCount]string{"top", "top-right", "bottom-right", "bottom", "bottom-left", "top-left"}

// Offset returns the coordinate delta to the neighbor in direction d.
func (d Direction) Offset() Coord { return offsets[d] }

// Opposite returns the direction pointing back at the cell we came from.
func (d Direction) Opposite() Direction { return (d + 3) % DirectionCount }

// Next returns the following direction in winding order.
func (d Direction) Next() Direction { return (d + 1) % DirectionCount }

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return "invalid"
	}
	return directionNames[d]
}
