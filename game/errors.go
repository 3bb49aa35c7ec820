package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrGameOver is returned by a Session once the game has been won or lost.
var ErrGameOver = errors.New("game is over")

// OutOfRangeError reports an invalid board dimension or mine count at
// construction.
type OutOfRangeError struct {
	Field    string
	Value    int
	Min, Max int // inclusive
}

func (err *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", err.Field, err.Value, err.Min, err.Max)
}

// BoundsError reports a coordinate outside the grid. No state is changed.
type BoundsError struct {
	Row, Col      int
	Height, Width int
}

func (err *BoundsError) Error() string {
	return fmt.Sprintf("tile (%d, %d) is outside the %dx%d board", err.Row, err.Col, err.Height, err.Width)
}

// FlaggedTileError reports a reveal attempted on a flagged tile.
type FlaggedTileError struct {
	Row, Col int
}

func (err *FlaggedTileError) Error() string {
	return fmt.Sprintf("tile (%d, %d) is flagged; unflag this tile first", err.Row, err.Col)
}

// FlagLimitError reports a flag placed once every available flag is in use.
type FlagLimitError struct {
	Row, Col int
	Limit    int
}

func (err *FlagLimitError) Error() string {
	return fmt.Sprintf("cannot flag tile (%d, %d): max number of flags is %d", err.Row, err.Col, err.Limit)
}
