package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// The connections for a specific game
type SessionConnections struct {
	connections map[string]*SafeConn // playerID -> connection
	mu          sync.RWMutex
}

func NewSessionConnections() *SessionConnections {
	return &SessionConnections{
		connections: make(map[string]*SafeConn),
	}
}

// Session is one hosted game. Its mutex serializes every engine call, which
// is all the concurrency control the engine needs.
type Session struct {
	ID          string
	mu          sync.Mutex
	state       *model.GameState
	white       model.Player
	black       model.Player
	connections *SessionConnections
	whiteClock  *model.Clock
	blackClock  *model.Clock
	createdAt   time.Time

	// version increases with every change a client can see. It orders
	// state pushes per connection.
	version uint64
}

type Players struct {
	White model.Player `json:"white"`
	Black model.Player `json:"black"`
}

type ThinkTime struct {
	White   int64       `json:"white"`
	Black   int64       `json:"black"`
	Running model.Color `json:"running,omitempty"`
}

// Snapshot is the read-only view of a session sent to clients.
type Snapshot struct {
	ID              string             `json:"id"`
	Version         uint64             `json:"version"`
	Board           model.Board        `json:"board"`
	Turn            model.Color        `json:"turn"`
	Status          model.GameStatus   `json:"status"`
	LastMove        *model.MoveRecord  `json:"lastMove"`
	History         []model.MoveRecord `json:"history"`
	Captured        []model.Piece      `json:"captured"`
	PromotionSquare *model.Square      `json:"promotionSquare"`
	Players         Players            `json:"players"`
	ThinkTimeMs     ThinkTime          `json:"thinkTimeMs"`
}

func NewSession(id string) *Session {
	return newSessionFrom(id, model.NewGameState())
}

func newSessionFrom(id string, state *model.GameState) *Session {
	return &Session{
		ID:          id,
		state:       state,
		connections: NewSessionConnections(),
		whiteClock:  model.NewClock(),
		blackClock:  model.NewClock(),
		createdAt:   time.Now(),
		version:     1,
	}
}

// AddPlayer seats playerID. The first player gets white, the second black;
// a seated player rejoining gets their color back.
func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if color, ok := s.colorOf(playerID); ok {
		return color, nil
	}
	var color model.Color
	switch {
	case s.white.ID == "":
		s.white = model.Player{ID: playerID, Color: model.White}
		color = model.White
	case s.black.ID == "":
		s.black = model.Player{ID: playerID, Color: model.Black}
		color = model.Black
	default:
		return model.NoColor, ErrGameFull
	}
	log.Infof("game %s: player %s seated as %s", s.ID, playerID, color)
	s.version++
	s.syncClocks()
	return color, nil
}

func (s *Session) colorOf(playerID string) (model.Color, bool) {
	switch {
	case playerID == "":
		return model.NoColor, false
	case s.white.ID == playerID:
		return model.White, true
	case s.black.ID == playerID:
		return model.Black, true
	}
	return model.NoColor, false
}

// seatedMover returns an error unless playerID holds the side to move.
func (s *Session) seatedMover(playerID string) error {
	color, ok := s.colorOf(playerID)
	if !ok {
		return ErrNotSeated
	}
	if color != s.state.Turn() {
		return ErrNotYourTurn
	}
	return nil
}

func (s *Session) SelectPiece(sq model.Square) ([]model.Square, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectPiece(sq)
}

func (s *Session) AttemptMove(playerID string, from, to model.Square) (model.MoveResult, error) {
	s.mu.Lock()
	if err := s.seatedMover(playerID); err != nil {
		s.mu.Unlock()
		return model.MoveResult{}, err
	}
	res, err := s.state.AttemptMove(from, to)
	if err != nil {
		s.mu.Unlock()
		return model.MoveResult{}, err
	}
	log.Debugf("game %s: %s %s -> %s (%s)", s.ID, res.Record.MovedPiece, from, to, res.Kind)
	s.version++
	s.syncClocks()
	snap := s.snapshot()
	s.mu.Unlock()

	s.broadcast(snap)
	return res, nil
}

func (s *Session) ChoosePromotion(playerID string, newType model.PieceType) (model.MoveResult, error) {
	s.mu.Lock()
	if err := s.seatedMover(playerID); err != nil {
		s.mu.Unlock()
		return model.MoveResult{}, err
	}
	res, err := s.state.ChoosePromotion(newType)
	if err != nil {
		s.mu.Unlock()
		return model.MoveResult{}, err
	}
	log.Debugf("game %s: promoted on %s to %s", s.ID, res.Record.To, newType)
	s.version++
	s.syncClocks()
	snap := s.snapshot()
	s.mu.Unlock()

	s.broadcast(snap)
	return res, nil
}

// Undo reverts the last move or cancels a pending promotion. Either seated
// player may undo.
func (s *Session) Undo(playerID string) (model.MoveRecord, error) {
	s.mu.Lock()
	if _, ok := s.colorOf(playerID); !ok {
		s.mu.Unlock()
		return model.MoveRecord{}, ErrNotSeated
	}
	rec, err := s.state.Undo()
	if err != nil {
		s.mu.Unlock()
		return model.MoveRecord{}, err
	}
	log.Debugf("game %s: undid %s -> %s", s.ID, rec.From, rec.To)
	s.version++
	s.syncClocks()
	snap := s.snapshot()
	s.mu.Unlock()

	s.broadcast(snap)
	return rec, nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		ID:       s.ID,
		Version:  s.version,
		Board:    s.state.Board(),
		Turn:     s.state.Turn(),
		Status:   s.state.Status(),
		LastMove: s.state.LastMove(),
		History:  s.state.History(),
		Captured: s.state.Captured(),
		Players:  Players{White: s.white, Black: s.black},
		ThinkTimeMs: ThinkTime{
			White: s.whiteClock.Elapsed().Milliseconds(),
			Black: s.blackClock.Elapsed().Milliseconds(),
		},
	}
	switch {
	case s.whiteClock.IsRunning():
		snap.ThinkTimeMs.Running = model.White
	case s.blackClock.IsRunning():
		snap.ThinkTimeMs.Running = model.Black
	}
	if sq, ok := s.state.PendingPromotion(); ok {
		snap.PromotionSquare = &sq
	}
	return snap
}

// syncClocks runs the clock of the side to move once both seats are taken
// and the game is not over.
func (s *Session) syncClocks() {
	s.whiteClock.Stop()
	s.blackClock.Stop()
	if s.white.ID == "" || s.black.ID == "" || s.state.Status().Kind == model.Checkmate {
		return
	}
	if s.state.Turn() == model.White {
		s.whiteClock.Start()
	} else {
		s.blackClock.Start()
	}
}

// RegisterConnection attaches conn to playerID and sends it the current
// state. Writes to conn must go through the SafeConn it is wrapped in.
func (s *Session) RegisterConnection(playerID string, conn Conn) error {
	sc := safeConn(conn)

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		// Keep the existing connection and turn the new one away.
		s.connections.mu.Unlock()
		_ = sc.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		)
		sc.Close()
		return nil
	}
	s.connections.connections[playerID] = sc
	s.connections.mu.Unlock()
	log.Infof("game %s: registered connection for player %s", s.ID, playerID)

	snap := s.Snapshot()
	msg, err := stateMessage(snap)
	if err != nil {
		log.Errorf("game %s: marshal state: %v", s.ID, err)
		return nil
	}
	if err := sc.writeState(snap.Version, msg); err != nil {
		log.Warnf("game %s: send state to %s: %v", s.ID, playerID, err)
		s.UnregisterConnection(playerID, sc)
	}
	return nil
}

func (s *Session) UnregisterConnection(playerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	// Only drop the connection if it is still the current one.
	if current, exists := s.connections.connections[playerID]; exists && current.wraps(conn) {
		delete(s.connections.connections, playerID)
		log.Infof("game %s: unregistered connection for player %s", s.ID, playerID)
	}
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.connections)
}

func stateMessage(snap Snapshot) (ws.Message, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return ws.Message{}, err
	}
	return ws.Message{Type: ws.MessageTypeGameState, Payload: json.RawMessage(payload)}, nil
}

// broadcast pushes snap to every connection. It runs outside the session
// lock; SafeConn drops it on connections that already got a newer version.
func (s *Session) broadcast(snap Snapshot) {
	msg, err := stateMessage(snap)
	if err != nil {
		log.Errorf("game %s: marshal state: %v", s.ID, err)
		return
	}

	s.connections.mu.RLock()
	active := make(map[string]*SafeConn, len(s.connections.connections))
	for playerID, conn := range s.connections.connections {
		active[playerID] = conn
	}
	s.connections.mu.RUnlock()

	for playerID, conn := range active {
		if err := conn.writeState(snap.Version, msg); err != nil {
			log.Warnf("game %s: send state to %s: %v", s.ID, playerID, err)
			s.UnregisterConnection(playerID, conn)
		}
	}
}

// summary is used for listings; it reads under the session lock.
func (s *Session) summary() GameSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GameSummary{
		ID:          s.ID,
		Turn:        s.state.Turn(),
		Status:      s.state.Status(),
		Moves:       s.state.MoveCount(),
		OpenSeats:   s.openSeats(),
		Connections: s.ConnectionCount(),
		CreatedAt:   s.createdAt,
	}
}

func (s *Session) openSeats() int {
	open := 0
	if s.white.ID == "" {
		open++
	}
	if s.black.ID == "" {
		open++
	}
	return open
}
