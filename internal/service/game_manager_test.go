package service

import (
	"testing"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameManager(t *testing.T) {
	gm := NewGameManager()

	require.NoError(t, gm.CreateGame("one"))
	assert.ErrorIs(t, gm.CreateGame("one"), ErrGameExists)

	session, err := gm.GetGame("one")
	require.NoError(t, err)
	assert.Equal(t, "one", session.ID)

	_, err = gm.GetGame("missing")
	assert.ErrorIs(t, err, ErrGameNotFound)

	require.NoError(t, gm.CreateGame("two"))
	games := gm.ListGames()
	require.Len(t, games, 2)
	assert.Equal(t, "one", games[0].ID)
	assert.Equal(t, 2, games[0].OpenSeats)
	assert.Equal(t, model.GameStatus{Kind: model.InProgress}, games[0].Status)

	require.NoError(t, gm.DeleteGame("one"))
	assert.ErrorIs(t, gm.DeleteGame("one"), ErrGameNotFound)
	assert.Len(t, gm.ListGames(), 1)
}

func TestGameServiceFlow(t *testing.T) {
	svc := NewGameService(NewGameManager())

	gameID, err := svc.CreateGame()
	require.NoError(t, err)
	_, err = uuid.Parse(gameID)
	require.NoError(t, err)

	color, err := svc.JoinGame(gameID, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.White, color)
	color, err = svc.JoinGame(gameID, "bob")
	require.NoError(t, err)
	assert.Equal(t, model.Black, color)

	dests, err := svc.SelectPiece(gameID, square(7, 6))
	require.NoError(t, err)
	assert.Equal(t, []model.Square{square(5, 5), square(5, 7)}, dests)

	_, err = svc.HandleMove(gameID, "alice", square(6, 5), square(5, 5))
	require.NoError(t, err)
	_, err = svc.HandleMove(gameID, "bob", square(1, 4), square(3, 4))
	require.NoError(t, err)
	_, err = svc.HandleMove(gameID, "alice", square(6, 6), square(4, 6))
	require.NoError(t, err)
	_, err = svc.HandleMove(gameID, "bob", square(0, 3), square(4, 7))
	require.NoError(t, err)

	snap, err := svc.GetSnapshot(gameID)
	require.NoError(t, err)
	assert.Equal(t, model.GameStatus{Kind: model.Checkmate, Color: model.Black}, snap.Status)
	assert.Len(t, snap.History, 4)

	_, err = svc.Undo(gameID, "alice")
	require.NoError(t, err)
	snap, err = svc.GetSnapshot(gameID)
	require.NoError(t, err)
	assert.Equal(t, model.InProgress, snap.Status.Kind)

	_, err = svc.GetSnapshot("nope")
	assert.ErrorIs(t, err, ErrGameNotFound)
	_, err = svc.ChoosePromotion(gameID, "bob", model.Queen)
	assert.ErrorIs(t, err, model.ErrNoPendingPromotion)
}
