package constraint

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/util/collections"
)

// Director plays by deduction: it reads what every revealed number says about
// its covered neighbours, acts on whatever is certain, and otherwise picks the
// tile least likely to hide a mine.
type Director struct {
	session *game.Session
	random  *random.Director
}

// Observation records that exactly numMines of cells are mined
type Observation struct {
	numMines int
	cells    collections.Set[game.Coord]
}

type cellAction struct {
	coord game.Coord
	flag  bool
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.random = &random.Director{}
	director.random.Init(session)
}

func (director *Director) Act() (bool, error) {
	if director.session == nil || director.session.State().IsOver() {
		return false, nil
	}

	observations := director.observe()
	actors := []func([]*Observation) []cellAction{
		deliberateActions,
		subsetActions,
		director.lowestProbabilityActions,
	}

	for _, actor := range actors {
		acted, err := director.perform(actor(observations))
		if err != nil || acted {
			return acted, err
		}
	}

	return director.random.Act()
}

func (director *Director) End() {
	if director.random != nil {
		director.random.End()
	}
	director.session = nil
}

// observe builds one observation per revealed number that still borders
// covered, unflagged tiles.
func (director *Director) observe() []*Observation {
	tiles := director.session.Tiles()
	width := director.session.Width()
	at := func(coord game.Coord) game.TileView {
		return tiles[coord.Row*width+coord.Col]
	}

	var observations []*Observation
	for _, tile := range tiles {
		if !tile.Revealed || tile.Mined {
			continue
		}

		observation := &Observation{
			numMines: tile.AdjacentMines,
			cells:    collections.NewSet[game.Coord](),
		}
		for _, coord := range director.session.Neighbors(tile.Row, tile.Col) {
			neighbor := at(coord)
			switch {
			case neighbor.Revealed:
			case neighbor.Flagged:
				observation.numMines--
			default:
				observation.cells.Add(coord)
			}
		}

		if len(observation.cells) > 0 && !containsObservation(observations, observation) {
			observations = append(observations, observation)
		}
	}
	return observations
}

func containsObservation(observations []*Observation, observation *Observation) bool {
	for _, other := range observations {
		if other.numMines == observation.numMines && other.cells.Equal(observation.cells) {
			return true
		}
	}
	return false
}

func resolve(observation *Observation) []cellAction {
	var actions []cellAction
	switch observation.numMines {
	case 0:
		for cell := range observation.cells {
			actions = append(actions, cellAction{coord: cell})
		}
	case len(observation.cells):
		for cell := range observation.cells {
			actions = append(actions, cellAction{coord: cell, flag: true})
		}
	}
	return actions
}

func deliberateActions(observations []*Observation) []cellAction {
	for _, observation := range observations {
		if actions := resolve(observation); len(actions) > 0 {
			return actions
		}
	}
	return nil
}

// subsetActions splits observations whose cells contain another observation's
// cells, and resolves the remainder.
func subsetActions(observations []*Observation) []cellAction {
	for _, observation := range observations {
		for _, other := range observations {
			if other == observation {
				continue
			}

			_, isSubset := observation.cells.IntersectionEx(other.cells)
			if !isSubset || len(observation.cells) == len(other.cells) {
				continue
			}

			split := &Observation{
				numMines: other.numMines - observation.numMines,
				cells:    other.cells.Difference(observation.cells),
			}
			if actions := resolve(split); len(actions) > 0 {
				return actions
			}
		}
	}
	return nil
}

func (director *Director) lowestProbabilityActions(observations []*Observation) []cellAction {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[game.Coord]float64)

	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if past, ok := cellProbabilities[cell]; !ok || probability > past {
				cellProbabilities[cell] = probability
			}
		}
	}

	var lowestProbabilityCells []game.Coord
	for cell, probability := range cellProbabilities {
		switch {
		case probability < lowestProbability:
			lowestProbability = probability
			lowestProbabilityCells = []game.Coord{cell}
		case probability == lowestProbability:
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}

	// Leave it to a blind guess unless some number offers better odds
	blindProbability := float64(director.session.MineCount()-director.session.FlaggedCount()) /
		float64(director.session.CoveredCount()-director.session.FlaggedCount())
	if len(lowestProbabilityCells) == 0 || lowestProbability >= blindProbability {
		return nil
	}

	sort.Slice(lowestProbabilityCells, func(i, j int) bool {
		a, b := lowestProbabilityCells[i], lowestProbabilityCells[j]
		return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
	})
	pick := lowestProbabilityCells[director.session.Rand().Intn(len(lowestProbabilityCells))]
	return []cellAction{{coord: pick}}
}

// perform applies actions in order, stopping at the end of the game. Flags
// refused for lack of remaining flags are skipped.
func (director *Director) perform(actions []cellAction) (bool, error) {
	acted := false
	for _, action := range actions {
		if director.session.State().IsOver() {
			break
		}

		var err error
		if action.flag {
			err = director.session.ToggleFlag(action.coord.Row, action.coord.Col)
			var flagLimitErr *game.FlagLimitError
			if errors.As(err, &flagLimitErr) {
				continue
			}
		} else {
			_, err = director.session.Reveal(action.coord.Row, action.coord.Col)
		}
		if err != nil {
			return acted, errors.Wrapf(err, "acting on %v", action.coord)
		}
		acted = true
	}
	return acted, nil
}
