package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	notifyFlagged   = "Unflag tile first."
	notifyFlagLimit = "Flag limit reached."
	notifyGameOver  = "Press n to restart or q to exit."
)

// Session is one game: a Board plus everything the caller needs to drive it.
// All methods are safe for concurrent use; a single lock guards the session.
type Session struct {
	lock sync.Mutex

	id    uuid.UUID
	board *Board
	seed  int64
	rand  *rand.Rand
	state GameState

	startedAt, endedAt time.Time
	now                func() time.Time

	log logrus.FieldLogger
}

func NewSession(config GameConfig) (*Session, error) {
	logger, err := config.logger()
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	board, err := NewBoardWithRand(config.Width, config.Height, config.NumMines, rng)
	if err != nil {
		return nil, errors.Wrap(err, "creating board")
	}

	return newSession(board, seed, rng, logger)
}

// NewSessionWithBoard starts a session on a prepared board.
func NewSessionWithBoard(board *Board, logger *logrus.Logger) (*Session, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	seed := time.Now().UnixNano()
	return newSession(board, seed, rand.New(rand.NewSource(seed)), logger)
}

func newSession(board *Board, seed int64, rng *rand.Rand, logger *logrus.Logger) (*Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.Wrap(err, "generating session id")
	}

	session := &Session{
		id:    id,
		board: board,
		seed:  seed,
		rand:  rng,
		state: Ongoing,
		now:   time.Now,
		log:   logger.WithField("session", id.String()),
	}
	session.startedAt = session.now()

	session.log.WithFields(logrus.Fields{
		"width":  board.Width(),
		"height": board.Height(),
		"mines":  board.MineCount(),
		"seed":   seed,
	}).Info("started game")

	return session, nil
}

func (session *Session) ID() uuid.UUID {
	return session.id
}

func (session *Session) Seed() int64 {
	return session.seed
}

// Rand is the session's random source, shared with directors. It is not safe
// for concurrent use.
func (session *Session) Rand() *rand.Rand {
	return session.rand
}

func (session *Session) State() GameState {
	session.lock.Lock()
	defer session.lock.Unlock()

	return session.state
}

// Elapsed is the time since the game started, frozen once it ends.
func (session *Session) Elapsed() time.Duration {
	session.lock.Lock()
	defer session.lock.Unlock()

	if session.state.IsOver() {
		return session.endedAt.Sub(session.startedAt)
	}
	return session.now().Sub(session.startedAt)
}

// Reveal uncovers a tile and returns the resulting game state.
func (session *Session) Reveal(row, col int) (GameState, error) {
	session.lock.Lock()
	defer session.lock.Unlock()

	if session.state.IsOver() {
		return session.state, ErrGameOver
	}

	mined, err := session.board.Reveal(row, col)
	log := session.log.WithFields(logrus.Fields{"row": row, "col": col})
	if err != nil {
		log.WithError(err).Debug("reveal refused")
		return session.state, err
	}
	log.WithField("covered", session.board.CoveredCount()).Debug("revealed tile")

	switch {
	case mined:
		session.end(Lost)
	case session.board.Won():
		session.end(Won)
	}
	return session.state, nil
}

func (session *Session) ToggleFlag(row, col int) error {
	session.lock.Lock()
	defer session.lock.Unlock()

	if session.state.IsOver() {
		return ErrGameOver
	}

	err := session.board.ToggleFlag(row, col)
	log := session.log.WithFields(logrus.Fields{"row": row, "col": col})
	if err != nil {
		log.WithError(err).Debug("flag refused")
		return err
	}
	log.WithField("flags", session.board.FlaggedCount()).Debug("toggled flag")
	return nil
}

func (session *Session) end(state GameState) {
	session.state = state
	session.endedAt = session.now()

	session.log.WithFields(logrus.Fields{
		"result":  state.String(),
		"elapsed": session.endedAt.Sub(session.startedAt).String(),
	}).Info("game over")
}

func (session *Session) TileAt(row, col int) (TileView, error) {
	session.lock.Lock()
	defer session.lock.Unlock()

	return session.board.TileAt(row, col)
}

func (session *Session) Tiles() []TileView {
	session.lock.Lock()
	defer session.lock.Unlock()

	return session.board.Tiles()
}

func (session *Session) Neighbors(row, col int) []Coord {
	return session.board.Neighbors(row, col)
}

func (session *Session) Width() int {
	return session.board.Width()
}

func (session *Session) Height() int {
	return session.board.Height()
}

func (session *Session) MineCount() int {
	return session.board.MineCount()
}

func (session *Session) CoveredCount() int {
	session.lock.Lock()
	defer session.lock.Unlock()

	return session.board.CoveredCount()
}

func (session *Session) FlaggedCount() int {
	session.lock.Lock()
	defer session.lock.Unlock()

	return session.board.FlaggedCount()
}

// Notification is the message shown to the player for an error returned by
// Reveal or ToggleFlag.
func Notification(err error) string {
	var flaggedErr *FlaggedTileError
	var flagLimitErr *FlagLimitError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &flaggedErr):
		return notifyFlagged
	case errors.As(err, &flagLimitErr):
		return notifyFlagLimit
	case errors.Is(err, ErrGameOver):
		return notifyGameOver
	default:
		return err.Error()
	}
}
