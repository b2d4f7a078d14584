package player

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrQuit is returned when the person asks to leave the match.
var ErrQuit = errors.New("player quit")

// Quit reports whether err ends a match on the person's behalf: an explicit 'q'
// or the end of input.
func Quit(err error) bool {
	return errors.Is(err, ErrQuit) || errors.Is(err, io.ErrUnexpectedEOF)
}

// LineReader yields input one line at a time. *bufio.Scanner implements it,
// so a single scanner over stdin can be shared by menus and players.
type LineReader interface {
	Scan() bool
	Text() string
	Err() error
}

// Human reads the columns typed by a person, one per line, numbered from 1.
type Human struct {
	name   string
	in     LineReader
	prompt func(m game.Match)
}

// NewHuman reads moves from in. prompt is called before every read attempt,
// e.g. to redraw the board with the playable columns.
func NewHuman(name string, in LineReader, prompt func(game.Match)) *Human {
	if prompt == nil {
		prompt = func(game.Match) {}
	}
	return &Human{
		name:   name,
		in:     in,
		prompt: prompt,
	}
}

func (h *Human) Name() string {
	return h.name
}

// FindMove keeps asking until the input names a playable column or 'q'.
func (h *Human) FindMove(m game.Match) (game.Action, metrics.SearchMetric, error) {
	start := time.Now()
	for {
		h.prompt(m)

		if !h.in.Scan() {
			err := h.in.Err()
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return game.Action{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
		}

		input := strings.TrimSpace(h.in.Text())
		if input == "q" {
			return game.Action{}, metrics.SearchMetric{}, ErrQuit
		}

		action, ok := parseColumn(input)
		if ok && m.ValidAction(action) {
			return action, metrics.SearchMetric{Duration: time.Since(start)}, nil
		}
	}
}

func parseColumn(input string) (game.Action, bool) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > game.Cols {
		return game.Action{}, false
	}
	return game.Action{Column: n - 1}, true
}
