package service

import (
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// SafeConn serializes writes to one connection. The websocket library allows
// a single writer at a time, so every writer of a connection (state pushes
// and the read loop's replies) must go through the same SafeConn.
type SafeConn struct {
	conn Conn
	mu   sync.Mutex

	// lastVersion is the newest snapshot version written. Older state
	// messages are dropped so a client never steps back in time.
	lastVersion uint64
}

func NewSafeConn(conn Conn) *SafeConn {
	return &SafeConn{conn: conn}
}

// safeConn returns conn itself when it is already wrapped.
func safeConn(conn Conn) *SafeConn {
	if sc, ok := conn.(*SafeConn); ok {
		return sc
	}
	return NewSafeConn(conn)
}

func (c *SafeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *SafeConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// Close does not take the write lock so it can interrupt a blocked write.
func (c *SafeConn) Close() error {
	return c.conn.Close()
}

// writeState sends a gameState message unless a snapshot at least as new
// has already been sent on this connection.
func (c *SafeConn) writeState(version uint64, msg ws.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version <= c.lastVersion {
		return nil
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return err
	}
	c.lastVersion = version
	return nil
}

// wraps reports whether c is conn or wraps it.
func (c *SafeConn) wraps(conn Conn) bool {
	return Conn(c) == conn || c.conn == conn
}
