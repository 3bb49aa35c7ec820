package game

import "github.com/gammazero/deque"

// cascadeEmpty uncovers the region reachable from an already-revealed,
// unmined, zero-count tile through its up/down/left/right neighbours.
// Numbered tiles on the rim are uncovered but do not spread further; flagged
// and mined tiles are never touched. The revealed bit doubles as the visited
// set, so each tile enters the queue at most once.
func (board *Board) cascadeEmpty(origin *Tile) {
	var visitQueue deque.Deque[*Tile]
	visitQueue.PushBack(origin)

	for visitQueue.Len() > 0 {
		tile := visitQueue.PopFront()

		for _, neighbor := range board.orthogonalNeighbors(tile) {
			if neighbor.isRevealed || neighbor.isFlagged || neighbor.isMine {
				continue
			}

			board.reveal(neighbor)
			if neighbor.adjacentMines == 0 {
				visitQueue.PushBack(neighbor)
			}
		}
	}
}

func (board *Board) orthogonalNeighbors(tile *Tile) []*Tile {
	neighbors := make([]*Tile, 0, 4)
	if tile.row > 0 {
		neighbors = append(neighbors, &board.tiles[tile.row-1][tile.col])
	}
	if tile.row < board.height-1 {
		neighbors = append(neighbors, &board.tiles[tile.row+1][tile.col])
	}
	if tile.col > 0 {
		neighbors = append(neighbors, &board.tiles[tile.row][tile.col-1])
	}
	if tile.col < board.width-1 {
		neighbors = append(neighbors, &board.tiles[tile.row][tile.col+1])
	}
	return neighbors
}
