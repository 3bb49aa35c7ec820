package game

type TileState int
type GameState int

const (
	Unrevealed TileState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

var TileStates = []TileState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
	MineLosing,
}

var tileGlyphs = map[TileState]rune{
	Unrevealed:     '#',
	Empty:          '.',
	Number1:        '1',
	Number2:        '2',
	Number3:        '3',
	Number4:        '4',
	Number5:        '5',
	Number6:        '6',
	Number7:        '7',
	Number8:        '8',
	Flag:           'f',
	FlagWrong:      'x',
	Mine:           'F',
	MineUnrevealed: 'O',
	MineLosing:     '*',
}

func (state TileState) Glyph() rune {
	if glyph, ok := tileGlyphs[state]; ok {
		return glyph
	}
	return '?'
}

const (
	Lost GameState = iota
	Won
	Ongoing
)

func (state GameState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

func (state GameState) IsOver() bool {
	return state != Ongoing
}

const maxInt = int(^uint(0) >> 1)

// StateOf picks how a tile is displayed. Once the game is over, flags are
// judged against the mines underneath and, on a loss, every mine is shown.
func StateOf(view TileView, state GameState) TileState {
	switch {
	case view.Revealed:
		if view.Mined {
			return MineLosing
		}
		return TileState(view.AdjacentMines)
	case view.Flagged:
		switch {
		case state.IsOver() && view.Mined:
			return Mine
		case state == Lost:
			return FlagWrong
		default:
			return Flag
		}
	case view.Mined && state == Lost:
		return MineUnrevealed
	default:
		return Unrevealed
	}
}
