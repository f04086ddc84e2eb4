package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okillli/MinesweeperNew-sub001/grid"
)

// TestNew_ConfigurationErrors verifies the fail-fast contract: every invalid
// parameter set is rejected before any allocation, including the
// maximum-mines rule that would otherwise hang the rejection-sampling loop.
func TestNew_ConfigurationErrors(t *testing.T) {
	cases := []struct {
		name   string
		config grid.Config
	}{
		{"ZeroWidth", grid.Config{Width: 0, Height: 5, Mines: 3}},
		{"NegativeWidth", grid.Config{Width: -2, Height: 5, Mines: 3}},
		{"ZeroHeight", grid.Config{Width: 5, Height: 0, Mines: 3}},
		{"NegativeMines", grid.Config{Width: 5, Height: 5, Mines: -1}},
		{"MinesFillBoard", grid.Config{Width: 10, Height: 10, Mines: 100}},
		{"MinesOverflowBoard", grid.Config{Width: 10, Height: 10, Mines: 101}},
		{"MinesLeaveSingleCell", grid.Config{Width: 10, Height: 10, Mines: 99}},
		{"NegativeTraps", grid.Config{Width: 5, Height: 5, Mines: 3, Traps: -1}},
		{"NegativeCursed", grid.Config{Width: 5, Height: 5, Mines: 3, Cursed: -1}},
		{"HazardsLeaveNoSafeCell", grid.Config{Width: 5, Height: 5, Mines: 10, Traps: 10, Cursed: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board, err := grid.New(tc.config)
			assert.Nil(t, board)
			require.Error(t, err)

			var configErr *grid.ConfigurationError
			assert.True(t, errors.As(err, &configErr), "want ConfigurationError, got %T", err)
		})
	}
}

// TestNew_MineCounts exercises the rejection-sampling allocator across board
// shapes and seeds: construction terminates and places exactly the requested
// number of mines, including the densest legal board.
func TestNew_MineCounts(t *testing.T) {
	cases := []struct {
		name                 string
		width, height, mines int
	}{
		{"10x10x15", 10, 10, 15},
		{"20x20x80", 20, 20, 80},
		{"5x5x4", 5, 5, 4},
		{"NoMines", 5, 5, 0},
		{"DensestLegal", 10, 10, 98},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				board, err := grid.New(grid.Config{
					Width:  tc.width,
					Height: tc.height,
					Mines:  tc.mines,
					Seed:   seed,
				})
				require.NoError(t, err)

				mines := 0
				for y := 0; y < board.Height(); y++ {
					for x := 0; x < board.Width(); x++ {
						if board.CellAt(x, y).IsMine() {
							mines++
						}
					}
				}
				assert.Equal(t, tc.mines, mines, "seed %d", seed)
				assert.Equal(t, tc.mines, board.MineCount())
			}
		})
	}
}

// TestNew_Hazards checks that trap and cursed tags land on distinct safe
// cells, in exactly the requested quantities.
func TestNew_Hazards(t *testing.T) {
	board, err := grid.New(grid.Config{
		Width: 10, Height: 10,
		Mines: 10, Traps: 5, Cursed: 5,
		Seed: 7,
	})
	require.NoError(t, err)

	traps, cursed := 0, 0
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			if cell.IsTrap() {
				traps++
			}
			if cell.IsCursed() {
				cursed++
			}
			if cell.IsTrap() || cell.IsCursed() {
				assert.False(t, cell.IsMine(), "hazard on a mine at (%d, %d)", x, y)
				assert.False(t, cell.IsTrap() && cell.IsCursed(),
					"cell (%d, %d) carries both hazard tags", x, y)
			}
		}
	}
	assert.Equal(t, 5, traps)
	assert.Equal(t, 5, cursed)
}

// TestNumbers_MatchNeighborhood recounts every cell's Moore neighborhood on
// a seeded board and compares against the stored numbers.
func TestNumbers_MatchNeighborhood(t *testing.T) {
	board, err := grid.New(grid.Config{Width: 9, Height: 9, Mines: 10, Seed: 42})
	require.NoError(t, err)

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			if cell.IsMine() {
				continue
			}

			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if neighbor := board.CellAt(x+dx, y+dy); neighbor != nil && neighbor.IsMine() {
						want++
					}
				}
			}
			assert.Equal(t, want, cell.Number(), "number at (%d, %d)", x, y)
		}
	}
}

func TestToggleFlag(t *testing.T) {
	board, err := grid.New(grid.Config{Width: 4, Height: 4, Mines: 2, Seed: 3})
	require.NoError(t, err)

	assert.False(t, board.ToggleFlag(-1, 0))
	assert.False(t, board.ToggleFlag(4, 4))
	assert.Equal(t, 0, board.Flagged())

	require.True(t, board.ToggleFlag(1, 1))
	assert.True(t, board.CellAt(1, 1).IsFlagged())
	assert.Equal(t, 1, board.Flagged())

	// Self-inverse: flag then unflag restores both the cell and the counter.
	require.True(t, board.ToggleFlag(1, 1))
	assert.False(t, board.CellAt(1, 1).IsFlagged())
	assert.Equal(t, 0, board.Flagged())
}

func TestToggleFlag_RefusedOnRevealed(t *testing.T) {
	board, err := grid.New(grid.Config{Width: 4, Height: 4, Mines: 0, Seed: 3})
	require.NoError(t, err)

	require.NotEmpty(t, board.RevealCell(0, 0))
	assert.False(t, board.ToggleFlag(0, 0))
	assert.Equal(t, 0, board.Flagged())
}

// TestIsComplete_MinelessBoard cascades a mineless board from one corner:
// the whole board is a single zero region, so one reveal finishes it.
func TestIsComplete_MinelessBoard(t *testing.T) {
	board, err := grid.New(grid.Config{Width: 4, Height: 4, Mines: 0, Seed: 3})
	require.NoError(t, err)
	assert.False(t, board.IsComplete())

	revealed := board.RevealCell(0, 0)
	assert.Len(t, revealed, 16)
	assert.Equal(t, 16, board.Revealed())
	assert.True(t, board.IsComplete())

	// Zero-number cells are never chordable, revealed or not.
	assert.Nil(t, board.Chord(0, 0))
}

// TestIsComplete_IgnoresFlags wins a board while unrelated flags are set.
func TestIsComplete_IgnoresFlags(t *testing.T) {
	board, err := grid.New(grid.Config{Width: 5, Height: 5, Mines: 3, Seed: 11})
	require.NoError(t, err)

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if board.CellAt(x, y).IsMine() {
				require.True(t, board.ToggleFlag(x, y))
			}
		}
	}

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if !board.CellAt(x, y).IsMine() {
				board.RevealCell(x, y)
			}
		}
	}

	assert.Equal(t, board.NumCells()-board.MineCount(), board.Revealed())
	assert.True(t, board.IsComplete(), "flags are irrelevant to completion")
	assert.Equal(t, board.MineCount(), board.Flagged())
}

func TestRevealAllMines_Idempotent(t *testing.T) {
	board, err := grid.New(grid.Config{Width: 6, Height: 6, Mines: 5, Seed: 9})
	require.NoError(t, err)

	first := board.RevealAllMines()
	assert.Len(t, first, 5)
	assert.Equal(t, 0, board.Revealed())

	second := board.RevealAllMines()
	assert.Empty(t, second)
	assert.Equal(t, 0, board.Revealed())

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			assert.Equal(t, cell.IsMine(), cell.IsRevealed(),
				"exactly the mines are revealed at (%d, %d)", x, y)
		}
	}
}
