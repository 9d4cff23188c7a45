// Package hex defines the logical coordinate scheme of the hex grid.
//
// Cells are addressed by an integer (X, Z) pair in a doubled-row layout: a step to a
// side neighbor changes X by ±1 and Z by ±1, a step straight up or down changes Z by ±2
// and leaves X alone. Every coordinate reachable from the origin has X+Z even.
//
//	  0__1        vertex winding of a cell,
//	 5/  \2       edge k joins vertex k and k+1
//	 4\__/3       and faces Direction k
package hex

import "fmt"

// Coord is a logical cell coordinate.
type Coord struct {
	X int
	Z int
}

// Add returns c+o.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Z + o.Z} }

// Mul scales a coordinate offset by k.
func (c Coord) Mul(k int) Coord { return Coord{c.X * k, c.Z * k} }

// Neighbor returns the coordinate adjacent to c in direction d.
func (c Coord) Neighbor(d Direction) Coord { return c.Add(d.Offset()) }

// Neighbors returns all six adjacent coordinates in direction order.
func (c Coord) Neighbors() [DirectionCount]Coord {
	var out [DirectionCount]Coord
	for _, d := range Directions {
		out[d] = c.Neighbor(d)
	}
	return out
}

// Reachable reports whether c lies on the lattice spanned from the origin.
func (c Coord) Reachable() bool { return (c.X+c.Z)%2 == 0 }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Z) }

// Distance returns the number of neighbor steps between a and b.
func Distance(a, b Coord) int {
	dx := abs(a.X - b.X)
	dz := abs(a.Z - b.Z)
	if dz <= dx {
		return dx
	}
	return dx + (dz-dx)/2
}

// Ring returns the coordinates at exactly k steps from c, walking clockwise
// from the bottom-left corner. If k==0, returns [c].
func Ring(c Coord, k int) []Coord {
	if k == 0 {
		return []Coord{c}
	}
	res := make([]Coord, 0, 6*k)
	cur := c.Add(BottomLeft.Offset().Mul(k))
	for _, side := range Directions {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Neighbor(side)
		}
	}
	return res
}

// Disk returns all coordinates within r steps of c, innermost ring first.
func Disk(c Coord, r int) []Coord {
	res := make([]Coord, 0, 1+3*r*(r+1))
	for k := 0; k <= r; k++ {
		res = append(res, Ring(c, k)...)
	}
	return res
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
