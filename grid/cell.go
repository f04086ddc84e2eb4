package grid

import "fmt"

// Cell holds the per-position state of a single board tile. Cells are created
// once, during Grid construction, and are owned by their Grid for its entire
// lifetime; mine/trap/cursed tags and the adjacency number are fixed at
// construction, and only isRevealed and isFlagged mutate afterward.
type Cell struct {
	grid *Grid

	x, y int
	idx  int

	isMine   bool
	isTrap   bool
	isCursed bool

	isRevealed bool
	isFlagged  bool

	// number is the count of mines in the Moore neighborhood. Meaningful only
	// for non-mine cells; mines keep the zero default and it is never consulted.
	number int
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsTrap() bool {
	return cell.isTrap
}

func (cell *Cell) IsCursed() bool {
	return cell.isCursed
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

func (cell *Cell) Number() int {
	return cell.number
}

// neighbors returns the cell's Moore neighborhood, clipped at the grid edges.
func (cell *Cell) neighbors() []*Cell {
	neighbors := make([]*Cell, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		if neighbor := cell.grid.CellAt(cell.x+d[0], cell.y+d[1]); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}
