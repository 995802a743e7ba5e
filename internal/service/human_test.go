package service

import (
	"context"
	"io"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	lines   []string
	prompts []string
	notices []string
}

func (that *fakePrompter) Prompt(_ context.Context, text string) (string, error) {
	that.prompts = append(that.prompts, text)
	if len(that.lines) == 0 {
		return "", io.EOF
	}

	line := that.lines[0]
	that.lines = that.lines[1:]

	return line, nil
}

func (that *fakePrompter) Notify(text string) {
	that.notices = append(that.notices, text)
}

func TestParseMove(t *testing.T) {
	t.Run("Accepts two in-range integers", func(t *testing.T) {
		for line, want := range map[string]entity.Move{
			"0 1":         {Row: 0, Col: 1},
			"  2\t2  ":    {Row: 2, Col: 2},
			"00 001":      {Row: 0, Col: 1},
			"1    0\r\n":  {Row: 1, Col: 0},
		} {
			move, err := ParseMove(line, 3)
			require.NoError(t, err, line)
			assert.Equal(t, want, move, line)
		}
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		for _, line := range []string{"", "1", "1 2 3", "a b", "1,2", "-1 0", "+1 0", "1.0 2", "99999999999999999999999 0"} {
			_, err := ParseMove(line, 3)
			require.ErrorIs(t, err, apperror.ErrInvalidInput, line)
		}
	})

	t.Run("Rejects out of range coordinates", func(t *testing.T) {
		for _, line := range []string{"3 0", "0 3", "10 10"} {
			_, err := ParseMove(line, 3)
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, line)
		}
	})
}

func TestHumanService_NextMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Reprompts until the input is valid", func(t *testing.T) {
		// Given: a player who types garbage, then an out of range move, then a valid one
		prompter := &fakePrompter{lines: []string{"hello", "5 5", "1 2"}}
		human := NewHumanService(prompter)
		board, err := entity.NewBoard(3)
		require.NoError(t, err)

		// When: asking for a move
		move, err := human.NextMove(ctx, board)

		// Then: the valid move is returned after two diagnostics
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
		assert.Equal(t, []string{MovePrompt, MovePrompt, MovePrompt}, prompter.prompts)
		assert.Equal(t, []string{InvalidMoveMessage, InvalidMoveMessage}, prompter.notices)
	})

	t.Run("Does not check occupancy", func(t *testing.T) {
		prompter := &fakePrompter{lines: []string{"0 0"}}
		board, err := entity.NewBoard(2)
		require.NoError(t, err)
		require.NoError(t, board.Set(0, 0, entity.PlayerO))

		move, err := NewHumanService(prompter).NextMove(ctx, board)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Returns the input error when the input closes", func(t *testing.T) {
		prompter := &fakePrompter{lines: []string{"nope"}}
		board, err := entity.NewBoard(3)
		require.NoError(t, err)

		_, err = NewHumanService(prompter).NextMove(ctx, board)

		require.ErrorIs(t, err, io.EOF)
		assert.Equal(t, []string{InvalidMoveMessage}, prompter.notices)
	})
}
