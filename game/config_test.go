package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadGameConfig(t *testing.T) {
	config, err := LoadGameConfig([]byte("width: 30\nheight: 16\nmines: 99\nseed: 7\ndirector: constraint\n"))
	if err != nil {
		t.Fatal(err)
	}

	want := NewGameConfig()
	want.Width, want.Height, want.NumMines, want.Seed, want.DirectorName = 30, 16, 99, 7, "constraint"
	if config.Serialize() != want.Serialize() {
		t.Fatalf("got:\n%s\nwant:\n%s", config.Serialize(), want.Serialize())
	}
}

func TestLoadGameConfigKeepsDefaults(t *testing.T) {
	config, err := LoadGameConfig([]byte("mines: 3\n"))
	if err != nil {
		t.Fatal(err)
	}

	defaults := NewGameConfig()
	if config.Width != defaults.Width || config.Height != defaults.Height || config.LogLevel != defaults.LogLevel {
		t.Fatalf("defaults lost: %+v", config)
	}
	if config.NumMines != 3 {
		t.Fatalf("NumMines = %d, want 3", config.NumMines)
	}
}

func TestLoadGameConfigRejectsUnknownKeys(t *testing.T) {
	if _, err := LoadGameConfig([]byte("difficulty: hard\n")); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
}

func TestLoadGameConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("width: 4\nheight: 5\nmines: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadGameConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Width != 4 || config.Height != 5 || config.NumMines != 2 {
		t.Fatalf("unexpected config %+v", config)
	}

	if _, err := LoadGameConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestConfigLogger(t *testing.T) {
	config := NewGameConfig()
	config.LogLevel = "debug"
	logger, err := config.logger()
	if err != nil {
		t.Fatal(err)
	}
	if logger.Level != logrus.DebugLevel {
		t.Fatalf("Level = %v, want debug", logger.Level)
	}

	config.LogLevel = "loud"
	if _, err := config.logger(); err == nil {
		t.Fatalf("expected invalid log level to fail")
	}
}
