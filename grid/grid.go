// Package grid implements the tile-grid puzzle engine: board generation with
// random mine placement, adjacency numbers, reveal/flag/chord mutation with
// cascading reveals, and win detection. The engine is single-threaded and
// fully synchronous; the host drives it exclusively through the exported
// operations and reads per-cell state back through the Cell accessors.
package grid

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetLogger replaces the package logger, letting the host route engine
// logging into its own output.
func SetLogger(logger *logrus.Logger) {
	log = logger
}

// mooreOffsets lists the up-to-8 neighbor offsets, clockwise from north.
var mooreOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Grid owns a fixed-size rectangular matrix of Cells. Mine placement and
// numbers are fixed at construction; all later mutation happens in place
// through RevealCell, ToggleFlag, Chord and RevealAllMines.
type Grid struct {
	width, height int
	mineCount     int
	cells         [][]Cell

	// revealed counts non-mine cells revealed so far; flagged counts
	// currently flagged cells.
	revealed int
	flagged  int

	rand *rand.Rand
}

// New builds a fully generated board: parameters are validated before any
// allocation is attempted, mines and hazards are placed by rejection
// sampling, and every non-mine cell gets its adjacent-mine number.
func New(config Config) (*Grid, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := &Grid{
		width:     config.Width,
		height:    config.Height,
		mineCount: config.Mines,
		cells:     make([][]Cell, config.Height),
		rand:      rand.New(rand.NewSource(seed)),
	}

	idx := 0
	for y := 0; y < grid.height; y++ {
		row := make([]Cell, grid.width)
		grid.cells[y] = row

		for x := range row {
			cell := &row[x]
			cell.grid = grid
			cell.x, cell.y = x, y
			cell.idx = idx
			idx++
		}
	}

	grid.placeMines(config.Mines)
	grid.placeHazards(config.Traps, config.Cursed)
	grid.calculateNumbers()

	log.WithFields(logrus.Fields{
		"width":  grid.width,
		"height": grid.height,
		"mines":  grid.mineCount,
		"traps":  config.Traps,
		"cursed": config.Cursed,
		"seed":   seed,
	}).Debug("board generated")

	return grid, nil
}

// placeMines marks count cells as mines by rejection sampling: draw a uniform
// in-bounds coordinate, discard it if already mined, stop once count mines
// are placed. Validate has guaranteed free cells remain, so the loop assumes
// its precondition and never re-checks it.
func (grid *Grid) placeMines(count int) {
	placed := 0
	for placed < count {
		x := grid.rand.Intn(grid.width)
		y := grid.rand.Intn(grid.height)

		cell := &grid.cells[y][x]
		if cell.isMine {
			continue
		}
		cell.isMine = true
		placed++
	}
}

// placeHazards tags trap and cursed cells the same way mines are placed,
// rejecting mines and cells that already carry a hazard tag. Hazard cells
// stay ordinary safe cells to the engine; only the host interprets the tags.
func (grid *Grid) placeHazards(traps, cursed int) {
	place := func(count int, tag func(*Cell)) {
		placed := 0
		for placed < count {
			x := grid.rand.Intn(grid.width)
			y := grid.rand.Intn(grid.height)

			cell := &grid.cells[y][x]
			if cell.isMine || cell.isTrap || cell.isCursed {
				continue
			}
			tag(cell)
			placed++
		}
	}

	place(traps, func(cell *Cell) { cell.isTrap = true })
	place(cursed, func(cell *Cell) { cell.isCursed = true })
}

// calculateNumbers stores the adjacent-mine count on every non-mine cell.
func (grid *Grid) calculateNumbers() {
	for y := range grid.cells {
		for x := range grid.cells[y] {
			cell := &grid.cells[y][x]
			if cell.isMine {
				continue
			}

			count := 0
			for _, neighbor := range cell.neighbors() {
				if neighbor.isMine {
					count++
				}
			}
			cell.number = count
		}
	}
}

func (grid *Grid) Width() int {
	return grid.width
}

func (grid *Grid) Height() int {
	return grid.height
}

func (grid *Grid) NumCells() int {
	return grid.width * grid.height
}

func (grid *Grid) MineCount() int {
	return grid.mineCount
}

// Revealed returns the count of non-mine cells revealed so far.
func (grid *Grid) Revealed() int {
	return grid.revealed
}

// Flagged returns the count of currently flagged cells.
func (grid *Grid) Flagged() int {
	return grid.flagged
}

// CellAt returns the cell at (x, y), or nil when out of bounds.
func (grid *Grid) CellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < grid.width && y < grid.height {
		return &grid.cells[y][x]
	}
	return nil
}

// RevealCell reveals the cell at (x, y). Out-of-bounds coordinates, an
// already-revealed cell and a flagged cell are all no-ops returning nil:
// such calls are routine for an interactive board, never errors. Revealing
// a mine returns just that cell and leaves the safe-progress counter alone,
// so the host can apply damage; the engine tracks no health or game-over
// state of its own. Revealing a zero-number cell cascades, and the returned
// slice then holds every cell the cascade revealed.
func (grid *Grid) RevealCell(x, y int) []*Cell {
	cell := grid.CellAt(x, y)
	if cell == nil || cell.isRevealed || cell.isFlagged {
		return nil
	}

	if cell.isMine {
		cell.isRevealed = true
		log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("mine revealed")
		return []*Cell{cell}
	}

	if cell.number == 0 {
		return grid.cascade(cell)
	}

	grid.reveal(cell)
	return []*Cell{cell}
}

// reveal marks a safe cell revealed and advances the progress counter.
// Callers have already ruled out mines, flags and re-reveals.
func (grid *Grid) reveal(cell *Cell) {
	cell.isRevealed = true
	grid.revealed++
}

// ToggleFlag flips the flag on the cell at (x, y) and reports whether it did.
// Out-of-bounds coordinates and revealed cells are refused: flags only ever
// sit on hidden cells.
func (grid *Grid) ToggleFlag(x, y int) bool {
	cell := grid.CellAt(x, y)
	if cell == nil || cell.isRevealed {
		return false
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		grid.flagged++
	} else {
		grid.flagged--
	}
	return true
}

// Chord batch-reveals the neighborhood of a revealed numbered cell. It fires
// only when the flagged-neighbor count equals the cell's number exactly.
// Anything else (a hidden or zero-number target, too few or too many flags)
// is inert and changes nothing. The neighbor snapshot and flag count are
// taken before any reveal side effect, so a cascade triggered mid-chord can
// never retroactively change this chord's eligibility. Revealed neighbors may
// include mines when the flags were wrong; they are returned like any other
// cell, damage being the host's concern.
func (grid *Grid) Chord(x, y int) []*Cell {
	cell := grid.CellAt(x, y)
	if cell == nil || !cell.isRevealed || cell.number == 0 {
		return nil
	}

	neighbors := cell.neighbors()
	numFlagged := 0
	for _, neighbor := range neighbors {
		if neighbor.isFlagged {
			numFlagged++
		}
	}
	if numFlagged != cell.number {
		return nil
	}

	var revealed []*Cell
	for _, neighbor := range neighbors {
		if neighbor.isFlagged || neighbor.isRevealed {
			continue
		}
		revealed = append(revealed, grid.RevealCell(neighbor.x, neighbor.y)...)
	}
	return revealed
}

// IsComplete reports whether every non-mine cell has been revealed. Flag
// state plays no part.
func (grid *Grid) IsComplete() bool {
	return grid.revealed == grid.width*grid.height-grid.mineCount
}

// RevealAllMines exposes every mine, for the host to display once it declares
// the run over. Force-revealing a flagged mine drops its flag, since a cell
// is never flagged and revealed at once. The safe-progress counter tracks
// only non-mine cells and is not touched. Idempotent: repeat calls find every
// mine already revealed and return nothing.
func (grid *Grid) RevealAllMines() []*Cell {
	var revealed []*Cell
	for y := range grid.cells {
		for x := range grid.cells[y] {
			cell := &grid.cells[y][x]
			if !cell.isMine || cell.isRevealed {
				continue
			}

			if cell.isFlagged {
				cell.isFlagged = false
				grid.flagged--
			}
			cell.isRevealed = true
			revealed = append(revealed, cell)
		}
	}
	return revealed
}
