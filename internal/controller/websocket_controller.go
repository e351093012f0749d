package controller

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/benbeisheim/robchess/internal/service"
	"github.com/benbeisheim/robchess/internal/ws"
	"github.com/gofiber/fiber/v2/utils"
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
	gameID := utils.CopyString(c.Params("gameId"))
	playerID, _ := c.Locals("playerID").(string)
	logger := log.WithFields(log.Fields{"game": gameID, "player": playerID})
	ctx := context.Background()
	conn := ws.NewConn(c)

	if err := wsc.gameService.RegisterConnection(ctx, gameID, playerID, conn); err != nil {
		logger.WithError(err).Warn("failed to register connection")
		wsc.sendError(conn, err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.WithError(err).Debug("read error")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.WithError(err).Debug("parse error")
			wsc.sendError(conn, err)
			continue
		}
		if err := wsc.handleMessage(ctx, conn, gameID, playerID, msg); err != nil {
			logger.WithError(err).Debug("handle error")
			wsc.sendError(conn, err)
		}
	}
}

func (wsc *WebSocketController) handleMessage(ctx context.Context, conn *ws.Conn, gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		// the new state reaches every observer through the game's broadcast
		_, err := wsc.gameService.HandleMove(ctx, gameID, playerID, move.Move)
		return err

	case ws.MessageTypeThink:
		result, err := wsc.gameService.Think(ctx, gameID)
		if err != nil {
			return err
		}
		return conn.Send(ws.MessageTypeSearch, result)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(conn *ws.Conn, err error) {
	conn.Send(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
}
