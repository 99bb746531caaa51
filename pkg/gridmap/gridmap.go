// Package gridmap implements the occupancy grid the agent plans across.
package gridmap

// Map is a rectangular occupancy grid. Cells[i][j] == true means blocked.
type Map struct {
	Cells         [][]bool
	Height, Width int
}

// New returns a Map of the given dimensions, entirely free.
func New(height, width int) *Map {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Map{Cells: cells, Height: height, Width: width}
}

// InBounds reports whether (i, j) lies within the grid.
func (m *Map) InBounds(i, j int) bool {
	return i >= 0 && i < m.Height && j >= 0 && j < m.Width
}

// Traversable reports whether (i, j) is free. Precondition: InBounds(i, j).
func (m *Map) Traversable(i, j int) bool {
	return !m.Cells[i][j]
}

// Block marks (i, j) as occupied. Precondition: InBounds(i, j).
func (m *Map) Block(i, j int) {
	m.Cells[i][j] = true
}
