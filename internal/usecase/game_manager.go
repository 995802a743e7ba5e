package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const (
	SizePrompt         = "Enter the board size (e.g., 3 for 3x3, 4 for 4x4, etc.): "
	InvalidSizeMessage = "Invalid board size. Please enter a valid integer."
	SizeTooSmall       = "Invalid board size. The board needs at least one cell per side."
	AIPrompt           = "Do you want to play against the AI? (y/n): "
	NewGamePrompt      = "Do you want to start a new game? (y/n): "
)

type ui interface {
	tictactoe.Presenter

	Prompt(ctx context.Context, text string) (string, error)
	Notify(text string)
	Warn(text string)
	ShowScores(scores entity.Scores)
	Farewell()
}

type scoreLedger interface {
	Load(ctx context.Context) entity.Scores
	RecordWin(player entity.Player)
	Scores() entity.Scores
	Save(ctx context.Context) error
}

// GameManager drives repeated sessions and keeps the score ledger in sync.
type GameManager struct {
	logger *slog.Logger

	ui     ui
	ledger scoreLedger
	human  tictactoe.MoveSource
	bot    tictactoe.MoveSource

	maxBoardSize int
}

// NewGameManager - maxBoardSize of 0 allows boards up to entity.MaxBoardSize.
func NewGameManager(
	logger *slog.Logger,
	ui ui,
	ledger scoreLedger,
	human, bot tictactoe.MoveSource,
	maxBoardSize int,
) *GameManager {
	return &GameManager{
		logger:       logger,
		ui:           ui,
		ledger:       ledger,
		human:        human,
		bot:          bot,
		maxBoardSize: maxBoardSize,
	}
}

// Run plays sessions until the player declines another one or the input ends.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("component", "game_manager")

	scores := that.ledger.Load(ctx)
	log.Debug("scores loaded", "x", scores.X, "o", scores.O)

	err := that.loop(ctx)
	if errors.Is(err, io.EOF) {
		log.Info("input closed, leaving")
		err = nil
	}

	if err != nil {
		return err
	}

	that.ui.Farewell()

	return nil
}

func (that *GameManager) loop(ctx context.Context) error {
	for {
		size, err := that.askBoardSize(ctx)
		if err != nil {
			return err
		}

		withBot, err := that.askYesNo(ctx, AIPrompt)
		if err != nil {
			return err
		}

		outcome, err := that.PlaySession(ctx, size, withBot)
		if err != nil {
			return err
		}

		that.settleScores(ctx, outcome)

		again, err := that.askYesNo(ctx, NewGamePrompt)
		if err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}

// PlaySession plays one game. X is always human; O is the bot when withBot is set.
func (that *GameManager) PlaySession(ctx context.Context, size int, withBot bool) (entity.Outcome, error) {
	board, err := entity.NewBoard(size)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to create board: %w", err)
	}

	playerO := that.human
	if withBot {
		playerO = that.bot
	}

	session := tictactoe.NewSession(that.logger, board, that.human, playerO, that.ui)

	outcome, err := session.Run(ctx)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("session %s failed: %w", session.ID(), err)
	}

	return outcome, nil
}

// settleScores - records the winner, shows and persists the ledger. A failed
// save is shown to the player but does not stop the game.
func (that *GameManager) settleScores(ctx context.Context, outcome entity.Outcome) {
	if !outcome.IsDraw() {
		that.ledger.RecordWin(outcome.Winner)
	}

	that.ui.ShowScores(that.ledger.Scores())

	if err := that.ledger.Save(ctx); err != nil {
		that.ui.Warn(fmt.Sprintf("Warning: %v", err))
	}
}

func (that *GameManager) askBoardSize(ctx context.Context) (int, error) {
	for {
		answer, err := that.ui.Prompt(ctx, SizePrompt)
		if err != nil {
			return 0, err
		}

		size, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			that.ui.Notify(InvalidSizeMessage)
			continue
		}

		if err = that.checkBoardSize(size); err != nil {
			that.logger.Debug("board size rejected", "size", size, "error", err)
			that.ui.Notify(that.sizeMessage(size))
			continue
		}

		return size, nil
	}
}

func (that *GameManager) checkBoardSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: size %d is below 1", apperror.ErrInvalidConfiguration, size)
	}

	if limit := that.sizeLimit(); size > limit {
		return fmt.Errorf("%w: size %d is above %d", apperror.ErrInvalidConfiguration, size, limit)
	}

	return nil
}

// sizeLimit - the configured maximum, never above what a board can hold.
func (that *GameManager) sizeLimit() int {
	if that.maxBoardSize > 0 && that.maxBoardSize < entity.MaxBoardSize {
		return that.maxBoardSize
	}

	return entity.MaxBoardSize
}

func (that *GameManager) sizeMessage(size int) string {
	if size < 1 {
		return SizeTooSmall
	}

	limit := that.sizeLimit()

	return fmt.Sprintf("Invalid board size. The largest board is %dx%d.", limit, limit)
}

func (that *GameManager) askYesNo(ctx context.Context, prompt string) (bool, error) {
	answer, err := that.ui.Prompt(ctx, prompt)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}
