package random

import (
	"github.com/they4kman/sweepcore/game"
)

// Director reveals covered, unflagged tiles in a random order.
type Director struct {
	session *game.Session
	order   []game.Coord
}

func (director *Director) Init(session *game.Session) {
	director.session = session

	tiles := session.Tiles()
	director.order = make([]game.Coord, len(tiles))
	for i, tile := range tiles {
		director.order[i] = tile.Coord()
	}

	session.Rand().Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() (bool, error) {
	if director.session == nil || director.session.State().IsOver() {
		return false, nil
	}

	for len(director.order) > 0 {
		coord := director.order[0]
		director.order = director.order[1:]

		tile, err := director.session.TileAt(coord.Row, coord.Col)
		if err != nil {
			return false, err
		}
		if tile.Revealed || tile.Flagged {
			continue
		}

		if _, err := director.session.Reveal(coord.Row, coord.Col); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

func (director *Director) End() {
	director.session = nil
	director.order = nil
}
