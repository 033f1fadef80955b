package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrUnknownMode = errors.New("unknown game mode")

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// SessionManager - the single writer of session state. Every mutation goes
// through here: human moves, engine moves and resets. Illegal move attempts
// are swallowed into no-ops toward callers; only storage failures surface.
type SessionManager struct {
	logger      *slog.Logger
	playerRepo  playerRepo
	sessionRepo sessionRepo
}

func NewSessionManager(logger *slog.Logger, playerRepo playerRepo, sessionRepo sessionRepo) *SessionManager {
	return &SessionManager{
		logger: logger,

		playerRepo:  playerRepo,
		sessionRepo: sessionRepo,
	}
}

// GetOrCreatePlayer - returns the player with the given id, creating one
// with a fresh id when the id is empty or unknown.
func (that *SessionManager) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		playerID = pkg.GeneratePlayerID()
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err == nil {
		return player, nil
	}

	if !errors.Is(err, repository.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	player = &entity.Player{ID: playerID}
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

// NewSession - starts a fresh game for the player. Mode and engine side can
// only change through here: a session already in progress is fully replaced,
// never patched, and its epoch carries over incremented so pending engine
// results against the old board are recognized as stale.
func (that *SessionManager) NewSession(ctx context.Context, playerID, mode, engineMark string) (*entity.Session, error) {
	if mode != entity.ModePlayerVsPlayer && mode != entity.ModeVsEngine {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	if mode == entity.ModeVsEngine && engineMark != entity.PlayerX && engineMark != entity.PlayerO {
		engineMark = entity.PlayerO
	}

	player, err := that.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	epoch := 0
	sessionID := player.SessionID
	if sessionID == "" {
		sessionID = pkg.GenerateSessionID()
	} else if previous, prevErr := that.sessionRepo.GetByID(ctx, sessionID); prevErr == nil {
		epoch = previous.Epoch + 1
	}

	session := entity.NewSession(sessionID, mode, engineMark)
	session.Epoch = epoch

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	player.SessionID = session.ID
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return session, nil
}

// Session - returns the player's current session snapshot.
func (that *SessionManager) Session(ctx context.Context, playerID string) (*entity.Session, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return that.SessionByID(ctx, player.SessionID)
}

// SessionByID - returns a session snapshot by its own id.
func (that *SessionManager) SessionByID(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" {
		return nil, apperror.ErrSessionNotFound
	}

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

// AttemptMove - plays the player's move. A rejected move (occupied cell,
// terminal game, engine busy) returns the unchanged session and no error:
// invalid requests are ignored silently.
func (that *SessionManager) AttemptMove(ctx context.Context, playerID string, cell int) (*entity.Session, error) {
	session, err := that.Session(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err = tictactoe.AttemptMove(session, cell); err != nil {
		if !isRejection(err) {
			return nil, fmt.Errorf("failed to make move: %w", err)
		}

		that.logger.Debug("move rejected", "player", playerID, "cell", cell, "reason", err)

		return session, nil
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

// CompleteEngineTurn - applies the engine's move to the player's session.
// The epoch must match the one observed when the turn was scheduled; a
// session that was reset or replaced in the meantime keeps its state and
// the pending result is discarded.
func (that *SessionManager) CompleteEngineTurn(ctx context.Context, playerID string, epoch int) (*entity.Session, error) {
	session, err := that.Session(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Epoch != epoch || !session.IsBusy() {
		that.logger.Debug("discarding stale engine turn", "player", playerID, "epoch", epoch)
		return session, nil
	}

	if err = tictactoe.EngineMove(session); err != nil {
		return nil, fmt.Errorf("engine failed to make move: %w", err)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

// LeaveSession - abandons and deletes the player's current game. Leaving
// with no game in progress is a no-op.
func (that *SessionManager) LeaveSession(ctx context.Context, playerID string) error {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.SessionID == "" {
		return nil
	}

	if err = that.sessionRepo.DeleteByID(ctx, player.SessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	player.SessionID = ""
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

// isRejection - reports whether the error is an invalid move attempt, which
// the external contract defines as a silent no-op rather than a failure.
func isRejection(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrGameFinished) ||
		errors.Is(err, apperror.ErrEngineBusy)
}
