package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

type Board struct {
	width, height int // in number of tiles
	mineCount     int
	tiles         [][]Tile

	coveredCount int
	flaggedCount int
}

// NewBoard creates a width x height board with mineCount mines placed
// uniformly at random.
func NewBoard(width, height, mineCount int) (*Board, error) {
	return NewBoardWithRand(width, height, mineCount, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewBoardWithRand is NewBoard drawing mine positions from rng, so a given
// seed always produces the same layout.
func NewBoardWithRand(width, height, mineCount int, rng *rand.Rand) (*Board, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if mineCount < 0 || mineCount >= width*height {
		return nil, &OutOfRangeError{Field: "mine count", Value: mineCount, Min: 0, Max: width*height - 1}
	}

	board := createBoard(width, height, mineCount)

	// Partial Fisher-Yates: the first mineCount slots end up holding a uniform
	// sample of tile indexes without replacement
	tileIndexes := make([]int, width*height)
	for i := range tileIndexes {
		tileIndexes[i] = i
	}
	for i := 0; i < mineCount; i++ {
		j := i + rng.Intn(len(tileIndexes)-i)
		tileIndexes[i], tileIndexes[j] = tileIndexes[j], tileIndexes[i]

		tileIdx := tileIndexes[i]
		board.tiles[tileIdx/width][tileIdx%width].setMine()
	}

	board.countAdjacentMines()
	return board, nil
}

// NewBoardWithMines creates a board with mines at exactly the given
// coordinates.
func NewBoardWithMines(width, height int, mines []Coord) (*Board, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(mines) >= width*height {
		return nil, &OutOfRangeError{Field: "mine count", Value: len(mines), Min: 0, Max: width*height - 1}
	}

	board := createBoard(width, height, len(mines))
	for _, mine := range mines {
		if !board.InBounds(mine.Row, mine.Col) {
			return nil, board.boundsError(mine.Row, mine.Col)
		}
		tile := &board.tiles[mine.Row][mine.Col]
		if tile.isMine {
			return nil, errors.Errorf("duplicate mine at %v", mine)
		}
		tile.setMine()
	}

	board.countAdjacentMines()
	return board, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 {
		return &OutOfRangeError{Field: "width", Value: width, Min: 1, Max: maxInt}
	}
	if height <= 0 {
		return &OutOfRangeError{Field: "height", Value: height, Min: 1, Max: maxInt}
	}
	return nil
}

func createBoard(width, height, mineCount int) *Board {
	board := &Board{
		width:        width,
		height:       height,
		mineCount:    mineCount,
		tiles:        make([][]Tile, height),
		coveredCount: width * height,
	}

	for row := 0; row < height; row++ {
		board.tiles[row] = make([]Tile, width)
		for col := 0; col < width; col++ {
			tile := &board.tiles[row][col]
			tile.row, tile.col = row, col
		}
	}

	return board
}

// countAdjacentMines must run only once all mines have been placed.
func (board *Board) countAdjacentMines() {
	for row := range board.tiles {
		for col := range board.tiles[row] {
			n := 0
			for _, neighbor := range board.Neighbors(row, col) {
				if board.tiles[neighbor.Row][neighbor.Col].isMine {
					n++
				}
			}
			board.tiles[row][col].setAdjacentMines(n)
		}
	}
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) TotalTiles() int {
	return board.width * board.height
}

func (board *Board) MineCount() int {
	return board.mineCount
}

func (board *Board) CoveredCount() int {
	return board.coveredCount
}

func (board *Board) FlaggedCount() int {
	return board.flaggedCount
}

// Won reports whether only mined tiles remain covered. It is meaningful only
// while no mine has been revealed.
func (board *Board) Won() bool {
	return board.coveredCount == board.mineCount
}

func (board *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < board.height && col < board.width
}

func (board *Board) boundsError(row, col int) error {
	return &BoundsError{Row: row, Col: col, Height: board.height, Width: board.width}
}

func (board *Board) tileAt(row, col int) (*Tile, error) {
	if !board.InBounds(row, col) {
		return nil, board.boundsError(row, col)
	}
	return &board.tiles[row][col], nil
}

func (board *Board) TileAt(row, col int) (TileView, error) {
	tile, err := board.tileAt(row, col)
	if err != nil {
		return TileView{}, err
	}
	return tile.view(), nil
}

// Tiles returns a view of every tile, in row-major order
func (board *Board) Tiles() []TileView {
	views := make([]TileView, 0, board.TotalTiles())
	for row := range board.tiles {
		for col := range board.tiles[row] {
			views = append(views, board.tiles[row][col].view())
		}
	}
	return views
}

// Neighbors returns the coordinates of the up to 8 tiles surrounding
// (row, col), clipped at the board edges.
func (board *Board) Neighbors(row, col int) []Coord {
	neighbors := make([]Coord, 0, 8)

	isAtTopBorder := row < 1
	isAtBottomBorder := row >= board.height-1

	if col >= 1 {
		neighbors = append(neighbors, Coord{row, col - 1})

		if !isAtTopBorder {
			neighbors = append(neighbors, Coord{row - 1, col - 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Coord{row + 1, col - 1})
		}
	}

	if col < board.width-1 {
		neighbors = append(neighbors, Coord{row, col + 1})

		if !isAtTopBorder {
			neighbors = append(neighbors, Coord{row - 1, col + 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Coord{row + 1, col + 1})
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, Coord{row - 1, col})
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, Coord{row + 1, col})
	}

	return neighbors
}

// ToggleFlag flags or unflags a covered tile. Revealed tiles are left alone.
func (board *Board) ToggleFlag(row, col int) error {
	tile, err := board.tileAt(row, col)
	if err != nil {
		return err
	}

	if tile.isRevealed {
		return nil
	}

	if !tile.isFlagged && board.flaggedCount >= board.mineCount {
		return &FlagLimitError{Row: row, Col: col, Limit: board.mineCount}
	}

	tile.toggleFlagged()
	if tile.isFlagged {
		board.flaggedCount++
	} else {
		board.flaggedCount--
	}
	return nil
}

// Reveal uncovers the tile at (row, col) and reports whether it was mined.
// Uncovering an unmined tile with no adjacent mines cascades to its
// orthogonal neighbours.
func (board *Board) Reveal(row, col int) (bool, error) {
	tile, err := board.tileAt(row, col)
	if err != nil {
		return false, err
	}

	if tile.isFlagged {
		return false, &FlaggedTileError{Row: row, Col: col}
	}

	if tile.isRevealed {
		return tile.isMine, nil
	}

	mined := board.reveal(tile)
	if !mined && tile.adjacentMines == 0 {
		board.cascadeEmpty(tile)
	}
	return mined, nil
}

func (board *Board) reveal(tile *Tile) bool {
	board.coveredCount--
	return tile.reveal()
}
