// Package console is the line-oriented terminal front end of the game.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

const (
	OccupiedMessage = "This position is already taken. Please try again."
	DrawMessage     = "It's a draw!"
	FarewellMessage = "Thank you for playing Tic Tac Toe!"
)

type line struct {
	text string
	err  error
}

// Console reads answers from in and writes prompts, boards and messages to out.
type Console struct {
	in       io.Reader
	out      io.Writer
	renderer *Renderer

	startReader sync.Once
	lines       chan line
}

// Option is used to set options in New.
type Option func(*Console)

// WithNoColor renders marks without styling.
func WithNoColor() Option {
	return func(c *Console) {
		c.renderer.DisableColor()
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:       in,
		out:      out,
		renderer: NewRenderer(out),
		lines:    make(chan line),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Prompt writes text and waits for one line of input, without its line ending.
// It returns io.EOF once the input is exhausted.
func (that *Console) Prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(that.out, text)

	that.startReader.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		return l.text, l.err
	}
}

// readLines feeds Prompt one line at a time so a blocked read can be abandoned on cancel.
func (that *Console) readLines() {
	defer close(that.lines)

	reader := bufio.NewReader(that.in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" {
			that.lines <- line{text: strings.TrimRight(text, "\r\n")}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				that.lines <- line{err: fmt.Errorf("failed to read input: %w", err)}
			}

			return
		}
	}
}

func (that *Console) Notify(text string) {
	fmt.Fprintln(that.out, text)
}

func (that *Console) Warn(text string) {
	fmt.Fprintln(that.out, that.renderer.Warning(text))
}

func (that *Console) ShowBoard(board *entity.Board) {
	fmt.Fprintln(that.out, that.renderer.Board(board))
	fmt.Fprintln(that.out)
}

func (that *Console) ShowTurn(player entity.Player) {
	fmt.Fprintf(that.out, "Player %s's turn.\n", player)
}

func (that *Console) ShowRejected(_ entity.Player, _ entity.Move, reason error) {
	if errors.Is(reason, apperror.ErrCellOccupied) {
		that.Notify(OccupiedMessage)
		return
	}

	that.Notify(service.InvalidMoveMessage)
}

func (that *Console) ShowOutcome(outcome entity.Outcome) {
	if outcome.IsDraw() {
		that.Notify(DrawMessage)
		return
	}

	fmt.Fprintf(that.out, "Player %s wins!\n", outcome.Winner)
}

func (that *Console) ShowScores(scores entity.Scores) {
	fmt.Fprintf(that.out, "Scores: Player X: %d | Player O: %d\n", scores.X, scores.O)
}

func (that *Console) Farewell() {
	that.Notify(FarewellMessage)
}
