package grid

import "fmt"

// ConfigurationError reports invalid board parameters. It is always produced
// by Config.Validate before any allocation runs, so the mine allocator never
// spins against a configuration it cannot satisfy.
type ConfigurationError struct {
	Width, Height int
	Mines         int
	Traps         int
	Cursed        int
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("grid: cannot create a board with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("grid: cannot create a board with height %d", e.Height)
	case e.Mines < 0:
		return fmt.Sprintf("grid: cannot place a negative number of mines (%d)", e.Mines)
	case e.Traps < 0:
		return fmt.Sprintf("grid: cannot place a negative number of traps (%d)", e.Traps)
	case e.Cursed < 0:
		return fmt.Sprintf("grid: cannot place a negative number of cursed cells (%d)", e.Cursed)
	case e.Mines >= e.Width*e.Height-1:
		return fmt.Sprintf("grid: not enough room for %d mines on a %dx%d board", e.Mines, e.Width, e.Height)
	case e.Mines+e.Traps+e.Cursed >= e.Width*e.Height-1:
		return fmt.Sprintf("grid: %d mines, %d traps and %d cursed cells leave no safe cell on a %dx%d board",
			e.Mines, e.Traps, e.Cursed, e.Width, e.Height)
	default:
		return "grid: invalid board configuration"
	}
}
