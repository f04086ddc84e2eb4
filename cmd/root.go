package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/okillli/MinesweeperNew-sub001/grid"
)

var (
	boardConfig = grid.DefaultConfig()
	configPath  string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "gridengine",
	Short: "Drive a minesweeper-style grid engine from the terminal",
	Long: `gridengine generates a mine board and plays it through the engine's
public operations, standing in for the game that normally embeds it.

Commands at the prompt:
	r x y    reveal the cell at (x, y)
	f x y    toggle a flag on the cell at (x, y)
	c x y    chord the revealed cell at (x, y)
	q        quit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger := logrus.New()
			logger.SetLevel(logrus.DebugLevel)
			grid.SetLogger(logger)
		}

		if configPath != "" {
			in, err := os.ReadFile(configPath)
			if err != nil {
				return err
			}
			if boardConfig, err = grid.LoadConfig(in); err != nil {
				return err
			}
		}

		board, err := grid.New(boardConfig)
		if err != nil {
			return err
		}

		return play(board)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&boardConfig.Width, "width", "w", boardConfig.Width, "Width of the board, in cells")
	rootCmd.Flags().IntVarP(&boardConfig.Height, "height", "h", boardConfig.Height, "Height of the board, in cells")
	rootCmd.Flags().IntVarP(&boardConfig.Mines, "mines", "m", boardConfig.Mines, "Number of mines to place in the board")
	rootCmd.Flags().IntVar(&boardConfig.Traps, "traps", 0, "Number of trap cells to place")
	rootCmd.Flags().IntVar(&boardConfig.Cursed, "cursed", 0, "Number of cursed cells to place")
	rootCmd.Flags().Int64Var(&boardConfig.Seed, "seed", 0, "Board generation seed (0 seeds from the clock)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML board preset; overrides the size flags")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable engine debug logging")
}

// play runs the interactive loop, acting as the input and progression layers
// of the host: it feeds coordinates into the engine, inspects the returned
// reveal sets for hits, and checks completion after every mutation.
func play(board *grid.Grid) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		printBoard(board)
		fmt.Printf("%d/%d safe, %d flagged> ",
			board.Revealed(), board.NumCells()-board.MineCount(), board.Flagged())

		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "q" {
			return nil
		}
		if len(fields) != 3 {
			fmt.Println("expected: <command> <x> <y>")
			continue
		}

		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX != nil || errY != nil {
			fmt.Println("coordinates must be integers")
			continue
		}

		var hitMine bool
		switch fields[0] {
		case "r":
			hitMine = report(board.RevealCell(x, y))
		case "f":
			if !board.ToggleFlag(x, y) {
				fmt.Println("cannot flag there")
			}
		case "c":
			hitMine = report(board.Chord(x, y))
		default:
			fmt.Println("unknown command:", fields[0])
			continue
		}

		if hitMine {
			board.RevealAllMines()
			printBoard(board)
			fmt.Println("BOOM, run over")
			return nil
		}
		if board.IsComplete() {
			printBoard(board)
			fmt.Println("board complete!")
			return nil
		}
	}
}

// report announces the notable cells of a reveal set and reports whether a
// mine was among them.
func report(cells []*grid.Cell) bool {
	hitMine := false
	for _, cell := range cells {
		switch {
		case cell.IsMine():
			fmt.Printf("mine hit at (%d, %d)\n", cell.X(), cell.Y())
			hitMine = true
		case cell.IsTrap():
			fmt.Printf("trap sprung at (%d, %d)\n", cell.X(), cell.Y())
		case cell.IsCursed():
			fmt.Printf("cursed cell revealed at (%d, %d)\n", cell.X(), cell.Y())
		}
	}
	return hitMine
}

func printBoard(board *grid.Grid) {
	var out strings.Builder
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			switch {
			case cell.IsFlagged():
				out.WriteByte('f')
			case !cell.IsRevealed():
				out.WriteByte('#')
			case cell.IsMine():
				out.WriteByte('*')
			case cell.Number() == 0:
				out.WriteByte('.')
			default:
				out.WriteByte(byte('0' + cell.Number()))
			}
		}
		out.WriteByte('\n')
	}
	fmt.Print(out.String())
}
