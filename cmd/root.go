package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweepcore/director/constraint"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
)

var log = logrus.New()

var directors = map[string]func() game.Director{
	"random": func() game.Director {
		return &random.Director{}
	},
	"constraint": func() game.Director {
		return &constraint.Director{}
	},
}

var rootCmd = newRootCmd(os.Stdin, os.Stdout)

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweepcore",
		Short: "Play Minesweeper in the terminal",
		Long: `sweepcore is a text Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	sweepcore

Use the director flag to let the computer play when asked (a / auto)
	sweepcore --director constraint
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			if config.DirectorName != "" {
				newDirector, ok := directors[config.DirectorName]
				if !ok {
					return errors.Errorf("unknown director %q", config.DirectorName)
				}
				config.Director = newDirector()
			}

			level, err := logrus.ParseLevel(config.LogLevel)
			if err != nil {
				return errors.Wrap(err, "parsing log level")
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())
			config.Logger = log

			log.WithFields(logrus.Fields{
				"width":    config.Width,
				"height":   config.Height,
				"mines":    config.NumMines,
				"director": config.DirectorName,
			}).Debug("starting")

			return game.Run(config, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	cmd.Flags().Bool("help", false, "Help for this command")

	defaults := game.NewGameConfig()
	cmd.Flags().IntP("width", "w", defaults.Width, "Width of game board, in tiles")
	cmd.Flags().IntP("height", "h", defaults.Height, "Height of game board, in tiles")
	cmd.Flags().IntP("mines", "m", defaults.NumMines, "Number of mines to place in the game board")
	cmd.Flags().Int64("seed", 0, "Seed for mine placement (0 picks one from the clock)")
	cmd.Flags().StringP("director", "d", "", "Computer player to use for a/auto: random or constraint")
	cmd.Flags().String("log-level", defaults.LogLevel, "Log level: debug, info, warning, error")
	cmd.Flags().StringP("config", "c", "", "YAML file with game settings; flags override it")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file (if any)
// over the defaults.
func resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	flags := cmd.Flags()

	config := game.NewGameConfig()
	configPath, err := flags.GetString("config")
	if err != nil {
		return config, err
	}
	if configPath != "" {
		if config, err = game.LoadGameConfigFile(configPath); err != nil {
			return config, err
		}
	}

	if flags.Changed("width") {
		config.Width, err = flags.GetInt("width")
	}
	if err == nil && flags.Changed("height") {
		config.Height, err = flags.GetInt("height")
	}
	if err == nil && flags.Changed("mines") {
		config.NumMines, err = flags.GetInt("mines")
	}
	if err == nil && flags.Changed("seed") {
		config.Seed, err = flags.GetInt64("seed")
	}
	if err == nil && flags.Changed("director") {
		config.DirectorName, err = flags.GetString("director")
	}
	if err == nil && flags.Changed("log-level") {
		config.LogLevel, err = flags.GetString("log-level")
	}
	return config, err
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
