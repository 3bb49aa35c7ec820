package game

import "fmt"

type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

type Tile struct {
	row, col      int
	adjacentMines int
	counted       bool

	isMine, isRevealed, isFlagged bool
}

// TileView is a read-only copy of a Tile's state, handed out to renderers and
// directors so they cannot mutate the board behind its counters.
type TileView struct {
	Row, Col      int
	Revealed      bool
	Flagged       bool
	Mined         bool
	AdjacentMines int
}

func (view TileView) Coord() Coord {
	return Coord{view.Row, view.Col}
}

func (tile *Tile) String() string {
	return fmt.Sprintf("Tile(%v, %v)", tile.row, tile.col)
}

func (tile *Tile) view() TileView {
	return TileView{
		Row:           tile.row,
		Col:           tile.col,
		Revealed:      tile.isRevealed,
		Flagged:       tile.isFlagged,
		Mined:         tile.isMine,
		AdjacentMines: tile.adjacentMines,
	}
}

func (tile *Tile) setMine() {
	tile.isMine = true
}

// setAdjacentMines may only run once, after every mine on the board is placed.
func (tile *Tile) setAdjacentMines(n int) {
	if tile.counted {
		panic(fmt.Sprintf("%v: adjacent mines already counted", tile))
	}
	tile.adjacentMines = n
	tile.counted = true
}

// reveal uncovers the tile and reports whether it was mined
func (tile *Tile) reveal() bool {
	tile.isRevealed = true
	return tile.isMine
}

func (tile *Tile) toggleFlagged() {
	tile.isFlagged = !tile.isFlagged
}
