package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const usage = "Commands: r ROW COL (reveal), f ROW COL (flag/unflag), a (director step), auto, n (new game), q (quit)"

// Run plays games from text commands read from in, drawing the board to out
// after every command, until in is exhausted or the player quits.
func Run(config GameConfig, in io.Reader, out io.Writer) error {
	session, err := startSession(config)
	if err != nil {
		return err
	}
	defer func() {
		if config.Director != nil {
			config.Director.End()
		}
	}()

	notification := ""
	scanner := bufio.NewScanner(in)
	for {
		draw(out, session, notification)
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return errors.Wrap(scanner.Err(), "reading commands")
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		notification = ""
		command, args := strings.ToLower(fields[0]), fields[1:]

		switch command {
		case "q", "quit", "e", "exit":
			return nil

		case "n", "new":
			// Each new game draws its seed from the last one, so a whole run
			// replays from the first seed
			config.Seed = session.Rand().Int63()
			if session, err = startSession(config); err != nil {
				return err
			}

		case "r", "reveal", "f", "flag":
			row, col, parseErr := parseCoords(args)
			if parseErr != nil {
				notification = usage
				break
			}
			if command[0] == 'r' {
				_, err = session.Reveal(row, col)
			} else {
				err = session.ToggleFlag(row, col)
			}
			notification = Notification(err)

		case "a", "act", "auto":
			if config.Director == nil {
				notification = "No director configured."
				break
			}
			if session.State().IsOver() {
				notification = Notification(ErrGameOver)
				break
			}
			if command == "auto" {
				err = ActContinuously(config.Director, session)
			} else {
				_, err = config.Director.Act()
			}
			notification = Notification(err)

		default:
			notification = usage
		}
	}
}

func startSession(config GameConfig) (*Session, error) {
	session, err := NewSession(config)
	if err != nil {
		return nil, err
	}

	if config.Director != nil {
		config.Director.End()
		config.Director.Init(session)
	}
	return session, nil
}

func parseCoords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("expected ROW COL, got %d arguments", len(args))
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "parsing row")
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "parsing col")
	}
	return row, col, nil
}

func draw(out io.Writer, session *Session, notification string) {
	state := session.State()

	fmt.Fprintf(out, "Time: %.1fs  Mines: %03d  Covered: %d\n",
		session.Elapsed().Seconds(),
		session.MineCount()-session.FlaggedCount(),
		session.CoveredCount(),
	)
	fmt.Fprint(out, RenderBoard(session.Tiles(), session.Width(), state))

	switch state {
	case Won:
		fmt.Fprintln(out, "YOU WIN!")
	case Lost:
		fmt.Fprintln(out, "GAME OVER!")
	}
	if state.IsOver() {
		notification = Notification(ErrGameOver)
	}
	if notification != "" {
		fmt.Fprintln(out, notification)
	}
}

// RenderBoard draws tiles, given in row-major order, as a grid of glyphs with
// row and column numbers along the edges.
func RenderBoard(tiles []TileView, width int, state GameState) string {
	var builder strings.Builder
	if width <= 0 {
		return ""
	}
	height := len(tiles) / width
	label := len(strconv.Itoa(max(width, height) - 1))

	builder.WriteString(strings.Repeat(" ", label+1))
	for col := 0; col < width; col++ {
		fmt.Fprintf(&builder, "%*d", label+1, col)
	}
	builder.WriteByte('\n')

	for row := 0; row < height; row++ {
		fmt.Fprintf(&builder, "%*d ", label, row)
		for _, tile := range tiles[row*width : (row+1)*width] {
			fmt.Fprintf(&builder, "%*c", label+1, StateOf(tile, state).Glyph())
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
