package grid

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/okillli/MinesweeperNew-sub001/util/collections"
)

// cascade flood-fills outward from a zero-number cell, revealing the whole
// connected zero region together with its numbered border. Expansion
// continues only through cells whose own number is zero; numbered cells are
// revealed but never expanded through. Flagged cells are hard boundaries:
// they are never auto-revealed, whatever they hide, so the player's manual
// markings survive every cascade. Each cell is enqueued at most once.
func (grid *Grid) cascade(start *Cell) []*Cell {
	visited := make(collections.Set[int])
	var queue deque.Deque[*Cell]

	visited.Add(start.idx)
	queue.PushBack(start)

	var revealed []*Cell
	for queue.Len() > 0 {
		cell := queue.PopFront()

		if cell.isFlagged || cell.isRevealed {
			continue
		}

		grid.reveal(cell)
		revealed = append(revealed, cell)

		if cell.number != 0 {
			continue
		}
		for _, neighbor := range cell.neighbors() {
			if visited.Contains(neighbor.idx) {
				continue
			}
			visited.Add(neighbor.idx)
			queue.PushBack(neighbor)
		}
	}

	log.WithFields(logrus.Fields{
		"origin": start.String(),
		"cells":  len(revealed),
	}).Debug("cascade complete")

	return revealed
}
