package game

import "testing"

func TestAdjacentMinesCountedOnce(t *testing.T) {
	board := mustBoard(t, 2, 2, Coord{0, 0})

	defer func() {
		if recover() == nil {
			t.Fatalf("recounting adjacent mines should panic")
		}
	}()
	board.countAdjacentMines()
}

func TestTileViewIsACopy(t *testing.T) {
	board := mustBoard(t, 2, 2, Coord{0, 0})

	view, _ := board.TileAt(1, 1)
	view.Revealed = true
	view.Flagged = true

	if tile, _ := board.TileAt(1, 1); tile.Revealed || tile.Flagged {
		t.Fatalf("mutating a view changed the board")
	}
	if view.Coord() != (Coord{1, 1}) {
		t.Fatalf("Coord() = %v", view.Coord())
	}
}
