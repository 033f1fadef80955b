package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage)

	// Given: a fresh session
	session := entity.NewSession("123", entity.ModeVsEngine, entity.PlayerO)

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, session)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// Given: a stored session with a move played
		session := entity.NewSession("123", entity.ModeVsEngine, entity.PlayerO)
		session.Board[4] = entity.PlayerX
		session.Turn = entity.PlayerO
		session.State = entity.StateEngineThinking

		err := sessionRepo.CreateOrUpdate(ctx, session)
		require.NoError(t, err)

		// When: GetByID is called with the existing id
		retrieved, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the session round-trips unchanged
		require.NoError(t, err)
		require.Equal(t, session, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// When: GetByID is called with a non-existent id
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrSessionNotFound, err)
		assert.Empty(t, retrieved.ID)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage)

	// Given: a stored session
	session := entity.NewSession("123", entity.ModePlayerVsPlayer, "")
	err := sessionRepo.CreateOrUpdate(ctx, session)
	require.NoError(t, err)

	// When: DeleteByID is called
	err = sessionRepo.DeleteByID(ctx, session.ID)
	require.NoError(t, err)

	// Then: the session is gone
	_, err = sessionRepo.GetByID(ctx, session.ID)
	assert.Equal(t, ErrSessionNotFound, err)
}
