package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Cell is a single grid cell. Age counts consecutive generations alive and is
// always zero for dead cells.
type Cell struct {
	Alive bool
	Age   uint32
}
