package constraint

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/util/collections"
)

func newSession(t *testing.T, board *game.Board) *game.Session {
	t.Helper()
	logger, _ := test.NewNullLogger()
	session, err := game.NewSessionWithBoard(board, logger)
	if err != nil {
		t.Fatal(err)
	}
	return session
}

func coords(cs ...game.Coord) collections.Set[game.Coord] {
	return collections.NewSet(cs...)
}

var (
	a = game.Coord{Row: 0, Col: 0}
	b = game.Coord{Row: 0, Col: 1}
	c = game.Coord{Row: 0, Col: 2}
)

func TestResolve(t *testing.T) {
	safe := resolve(&Observation{numMines: 0, cells: coords(a, b)})
	if len(safe) != 2 || safe[0].flag || safe[1].flag {
		t.Fatalf("expected two reveals, got %+v", safe)
	}

	mined := resolve(&Observation{numMines: 2, cells: coords(a, b)})
	if len(mined) != 2 || !mined[0].flag || !mined[1].flag {
		t.Fatalf("expected two flags, got %+v", mined)
	}

	if unsure := resolve(&Observation{numMines: 1, cells: coords(a, b)}); len(unsure) != 0 {
		t.Fatalf("expected no actions, got %+v", unsure)
	}
}

func TestSubsetActions(t *testing.T) {
	cases := []struct {
		name       string
		inner      *Observation
		outer      *Observation
		wantAction cellAction
	}{
		{
			name:       "remainder is safe",
			inner:      &Observation{numMines: 1, cells: coords(a, b)},
			outer:      &Observation{numMines: 1, cells: coords(a, b, c)},
			wantAction: cellAction{coord: c},
		},
		{
			name:       "remainder is mined",
			inner:      &Observation{numMines: 1, cells: coords(a, b)},
			outer:      &Observation{numMines: 2, cells: coords(a, b, c)},
			wantAction: cellAction{coord: c, flag: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actions := subsetActions([]*Observation{tc.outer, tc.inner})
			if len(actions) != 1 || actions[0] != tc.wantAction {
				t.Fatalf("got %+v, want %+v", actions, tc.wantAction)
			}
		})
	}

	disjoint := []*Observation{
		{numMines: 1, cells: coords(a, b)},
		{numMines: 1, cells: coords(b, c)},
	}
	if actions := subsetActions(disjoint); len(actions) != 0 {
		t.Fatalf("overlapping observations are not subsets, got %+v", actions)
	}
}

func TestDirectorRevealsOnceMineIsFlagged(t *testing.T) {
	// * 1 0 ...: after (0,1) is revealed and the mine flagged, (0,2) is safe
	board, err := game.NewBoardWithMines(3, 1, []game.Coord{a})
	if err != nil {
		t.Fatal(err)
	}
	session := newSession(t, board)
	if _, err := session.Reveal(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := session.ToggleFlag(0, 0); err != nil {
		t.Fatal(err)
	}

	director := &Director{}
	director.Init(session)
	defer director.End()

	acted, err := director.Act()
	if err != nil {
		t.Fatal(err)
	}
	if !acted || session.State() != game.Won {
		t.Fatalf("Act() = %v, state %v; want the safe tile revealed", acted, session.State())
	}
}

func TestDirectorFlagsOnlyMines(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		board, err := game.NewBoardWithRand(9, 9, 10, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		session := newSession(t, board)

		director := &Director{}
		director.Init(session)
		if err := game.ActContinuously(director, session); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		director.End()

		if !session.State().IsOver() {
			t.Fatalf("seed %d: director stopped before the game ended", seed)
		}
		for _, tile := range session.Tiles() {
			if tile.Flagged && !tile.Mined {
				t.Fatalf("seed %d: flagged safe tile %v", seed, tile.Coord())
			}
			if tile.Flagged && tile.Revealed {
				t.Fatalf("seed %d: tile %v both flagged and revealed", seed, tile.Coord())
			}
		}
		if session.FlaggedCount() > session.MineCount() {
			t.Fatalf("seed %d: %d flags for %d mines", seed, session.FlaggedCount(), session.MineCount())
		}
	}
}
