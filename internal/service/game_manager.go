// service/game_manager.go
package service

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/exp/maps"
)

type GameManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// GameSummary is one line of a game listing.
type GameSummary struct {
	ID          string           `json:"id"`
	Turn        model.Color      `json:"turn"`
	Status      model.GameStatus `json:"status"`
	Moves       int              `json:"moves"`
	OpenSeats   int              `json:"openSeats"`
	Connections int              `json:"connections"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func NewGameManager() *GameManager {
	return &GameManager{
		sessions: make(map[string]*Session),
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.sessions[gameID]; exists {
		return fmt.Errorf("create %s: %w", gameID, ErrGameExists)
	}

	gm.sessions[gameID] = NewSession(gameID)
	log.Infof("game %s created", gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.sessions[gameID]
	if !exists {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	return session, nil
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.sessions[gameID]; !exists {
		return fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	delete(gm.sessions, gameID)
	log.Infof("game %s deleted", gameID)
	return nil
}

// ListGames summarizes every hosted game, oldest first. Sessions are read
// after the manager lock is released.
func (gm *GameManager) ListGames() []GameSummary {
	gm.mu.RLock()
	sessions := maps.Clone(gm.sessions)
	gm.mu.RUnlock()

	summaries := make([]GameSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, session.summary())
	}
	slices.SortFunc(summaries, func(a, b GameSummary) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return summaries
}
