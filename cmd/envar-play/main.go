// Command envar-play exercises the envar package against the current
// environment:
//
//	PLAY_FOO="1,2,,3" PLAY_BAR="1:on:n" PLAY_LEVEL="vvvv" go run ./cmd/envar-play
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ab0utbla-k/envar"
)

var (
	commaList = envar.ListConfig{Sep: ",", FilterEmpty: true, FilterWhitespace: true}
	colonList = envar.ListConfig{Sep: ":", FilterEmpty: true, FilterWhitespace: true}

	foo   = envar.OnDemand("PLAY_FOO", envar.List(envar.Int, commaList), envar.NoDefault[[]int]())
	bar   = envar.OnDemand("PLAY_BAR", envar.List(envar.Bool, colonList), envar.NoDefault[[]bool]())
	level = envar.OnDemand("PLAY_LEVEL", parseLevel, envar.WithDefault(Level(0)))
)

// Level is a verbosity level written as a run of 'v' characters, e.g.
// "vvv" is Level(3). It shows how a caller supplies a rule for its own
// type without touching the built-in ones.
type Level int

func parseLevel(name, raw string) (Level, error) {
	value := strings.TrimSpace(raw)
	for _, c := range value {
		if c != 'v' {
			return 0, envar.NewParseError(name, "Level", value, envar.NewReason(func() string {
				return fmt.Sprintf("invalid character %q", c)
			}))
		}
	}
	return Level(len(value)), nil
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	for _, read := range []func(*slog.Logger) error{readFoo, readBar, readLevel} {
		if err := read(logger); err != nil {
			logger.Error("cannot read variable", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func readFoo(logger *slog.Logger) error {
	values, err := foo.Value()
	if err != nil {
		if errors.Is(err, envar.ErrNotSet) {
			logger.Info("variable not set", slog.String("name", foo.Name()))
			return nil
		}
		return describe(err)
	}
	logger.Info("parsed list", slog.String("name", foo.Name()), slog.Any("values", values))
	return nil
}

func readBar(logger *slog.Logger) error {
	values, err := bar.Value()
	if err != nil {
		if errors.Is(err, envar.ErrNotSet) {
			logger.Info("variable not set", slog.String("name", bar.Name()))
			return nil
		}
		return describe(err)
	}
	logger.Info("parsed list", slog.String("name", bar.Name()), slog.Any("values", values))
	return nil
}

func readLevel(logger *slog.Logger) error {
	v, err := level.Value()
	if err != nil {
		return describe(err)
	}
	logger.Info("parsed level", slog.String("name", level.Name()), slog.Int("level", int(v)))
	return nil
}

// describe attaches the lazy reason text when the failure was a parse
// error.
func describe(err error) error {
	var pe *envar.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %s", err, pe.Reason())
	}
	return err
}
