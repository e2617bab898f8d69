package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)

	// Replies from this loop and state pushes from other requests share conn.
	conn := service.NewSafeConn(c)
	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		log.Warnf("game %s: register connection for %s: %v", gameID, playerID, err)
		wsc.sendError(conn, err)
		conn.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("game %s: read from %s: %v", gameID, playerID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(conn, fmt.Errorf("parse message: %w", err))
			continue
		}

		reply, err := wsc.handleMessage(gameID, playerID, msg)
		if err != nil {
			log.Debugf("game %s: %s from %s rejected: %v", gameID, msg.Type, playerID, err)
			wsc.sendError(conn, err)
			continue
		}
		if reply != nil {
			if err := conn.WriteJSON(reply); err != nil {
				log.Warnf("game %s: reply to %s: %v", gameID, playerID, err)
			}
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, conn)
}

// handleMessage applies one client message. State changes reach the client
// through the session broadcast; only direct answers are returned here.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, err
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, req.From, req.To)
		return nil, err

	case ws.MessageTypePromote:
		var req PromotionRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, err
		}
		_, err := wsc.gameService.ChoosePromotion(gameID, playerID, req.Type)
		return nil, err

	case ws.MessageTypeUndo:
		_, err := wsc.gameService.Undo(gameID, playerID)
		return nil, err

	case ws.MessageTypeSelect:
		var req SelectRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, err
		}
		dests, err := wsc.gameService.SelectPiece(gameID, req.Square)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(fiber.Map{"square": req.Square, "destinations": dests})
		if err != nil {
			return nil, err
		}
		return &ws.Message{Type: ws.MessageTypeDestinations, Payload: payload}, nil

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func errorMessage(err error) ws.Message {
	payload, _ := json.Marshal(ws.ErrorPayload{Error: err.Error()})
	return ws.Message{Type: ws.MessageTypeError, Payload: payload}
}

func (wsc *WebSocketController) sendError(c service.Conn, err error) {
	if werr := c.WriteJSON(errorMessage(err)); werr != nil {
		log.Debugf("send error message: %v", werr)
	}
}
