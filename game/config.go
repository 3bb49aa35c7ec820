package game

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	NumMines int `yaml:"mines"`

	// Seed for mine placement; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// Name of the director playing for the user ("", "random" or "constraint")
	DirectorName string `yaml:"director"`

	Director Director `yaml:"-"`

	LogLevel string `yaml:"log_level"`

	Logger *logrus.Logger `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:    10,
		Height:   10,
		NumMines: 10,
		LogLevel: "warning",
	}
}

// LoadGameConfig reads YAML from in over the defaults of NewGameConfig.
func LoadGameConfig(in []byte) (GameConfig, error) {
	config := NewGameConfig()
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrap(err, "parsing game config")
	}
	return config, nil
}

func LoadGameConfigFile(path string) (GameConfig, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return NewGameConfig(), errors.Wrapf(err, "reading game config %s", path)
	}
	return LoadGameConfig(in)
}

func (config GameConfig) Serialize() string {
	out, err := yaml.Marshal(config)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// logger returns the configured logger, or a new one at LogLevel.
func (config GameConfig) logger() (*logrus.Logger, error) {
	if config.Logger != nil {
		return config.Logger, nil
	}

	log := logrus.New()
	if config.LogLevel != "" {
		level, err := logrus.ParseLevel(config.LogLevel)
		if err != nil {
			return nil, errors.Wrap(err, "parsing log level")
		}
		log.SetLevel(level)
	}
	return log, nil
}
