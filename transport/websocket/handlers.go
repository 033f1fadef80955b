package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, cl *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	var payload Payload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	playerID := ""
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.useCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return cl.send(msg.Action, ResponsePayload{Error: "failed to create a new player"})
	}

	cl.playerID = player.ID

	response := ResponsePayload{Player: player}
	if session, sessionErr := that.useCase.Session(ctx, player.ID); sessionErr == nil {
		response.Session = session
	}

	return cl.send(msg.Action, response)
}

func (that *Server) handleNewGame(ctx context.Context, cl *client, msg *Message) error {
	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	mode := payload.Mode
	if mode == "" {
		mode = entity.ModePlayerVsPlayer
	}

	return that.startSession(ctx, cl, msg.Action, mode, payload.Mark)
}

// handleGameMode - switches the mode. A mode change is never applied to a
// running board; it always starts a fresh session.
func (that *Server) handleGameMode(ctx context.Context, cl *client, msg *Message) error {
	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	engineMark := ""
	if session, err := that.useCase.Session(ctx, cl.playerID); err == nil {
		engineMark = session.EngineMark
	}

	return that.startSession(ctx, cl, msg.Action, payload.Mode, engineMark)
}

// handleGameSide - assigns the engine's mark, also only via a full reset.
func (that *Server) handleGameSide(ctx context.Context, cl *client, msg *Message) error {
	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return that.startSession(ctx, cl, msg.Action, entity.ModeVsEngine, payload.Mark)
}

func (that *Server) handleGameTurn(ctx context.Context, cl *client, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn")

	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Cell == nil {
		return cl.send(msg.Action, ResponsePayload{Error: "cell is required"})
	}

	session, err := that.useCase.AttemptMove(ctx, cl.playerID, *payload.Cell)
	if err != nil {
		log.Error("failed to make turn", "error", err)
		return cl.send(msg.Action, ResponsePayload{Error: "failed to make turn"})
	}

	if err = cl.send(msg.Action, ResponsePayload{Session: session}); err != nil {
		return err
	}

	if session.IsBusy() {
		that.scheduleEngineTurn(ctx, cl, session.Epoch)
	}

	return nil
}

func (that *Server) handleGameState(ctx context.Context, cl *client, msg *Message) error {
	session, err := that.useCase.Session(ctx, cl.playerID)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return cl.send(msg.Action, ResponsePayload{Error: "no active session"})
	}

	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	return cl.send(msg.Action, ResponsePayload{Session: session})
}

func (that *Server) handleGameLeave(ctx context.Context, cl *client, msg *Message) error {
	if err := that.useCase.LeaveSession(ctx, cl.playerID); err != nil {
		return fmt.Errorf("failed to leave session: %w", err)
	}

	return cl.send(msg.Action, ResponsePayload{})
}

func (that *Server) startSession(ctx context.Context, cl *client, action, mode, engineMark string) error {
	log := that.logger.With("method", "startSession")

	session, err := that.useCase.NewSession(ctx, cl.playerID, mode, engineMark)
	if err != nil {
		log.Error("failed to start session", "error", err)
		return cl.send(action, ResponsePayload{Error: "failed to start a new game"})
	}

	if err = cl.send(action, ResponsePayload{Session: session}); err != nil {
		return err
	}

	// engine playing X owns the opening move
	if session.IsBusy() {
		that.scheduleEngineTurn(ctx, cl, session.Epoch)
	}

	return nil
}

// scheduleEngineTurn - applies the engine's reply after the cosmetic delay.
// The epoch observed here travels with the request; if the session is reset
// before the delay elapses, the manager drops the stale result and the
// board the client sees is the fresh one.
func (that *Server) scheduleEngineTurn(ctx context.Context, cl *client, epoch int) {
	log := that.logger.With("method", "scheduleEngineTurn")

	go func() {
		timer := time.NewTimer(that.moveDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		session, err := that.useCase.CompleteEngineTurn(ctx, cl.playerID, epoch)
		if err != nil {
			log.Error("failed to complete engine turn", "error", err)
			return
		}

		if err = cl.send("game:turn", ResponsePayload{Session: session}); err != nil {
			log.Error("failed to send engine turn", "error", err)
		}
	}()
}
