package controller

import (
	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func playerID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.PlayerIDKey).(string)
	return id
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		log.Errorf("create game: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	color, err := gc.gameService.JoinGame(c.Params("gameId"), playerID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	snap, err := gc.gameService.GetSnapshot(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(snap)
}

func (gc *GameController) SelectPiece(c *fiber.Ctx) error {
	sq := model.Square{Rank: c.QueryInt("rank", -1), File: c.QueryInt("file", -1)}
	dests, err := gc.gameService.SelectPiece(c.Params("gameId"), sq)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"square":       sq,
		"destinations": dests,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	gameID := c.Params("gameId")
	res, err := gc.gameService.HandleMove(gameID, playerID(c), req.From, req.To)
	if err != nil {
		log.Debugf("game %s: move %s -> %s rejected: %v", gameID, req.From, req.To, err)
		return errorResponse(c, err)
	}
	return gc.respondWithState(c, gameID, fiber.Map{"result": res})
}

func (gc *GameController) ChoosePromotion(c *fiber.Ctx) error {
	var req PromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid promotion body",
		})
	}

	gameID := c.Params("gameId")
	res, err := gc.gameService.ChoosePromotion(gameID, playerID(c), req.Type)
	if err != nil {
		return errorResponse(c, err)
	}
	return gc.respondWithState(c, gameID, fiber.Map{"result": res})
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	rec, err := gc.gameService.Undo(gameID, playerID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return gc.respondWithState(c, gameID, fiber.Map{"undone": rec})
}

func (gc *GameController) respondWithState(c *fiber.Ctx, gameID string, body fiber.Map) error {
	snap, err := gc.gameService.GetSnapshot(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	body["state"] = snap
	return c.JSON(body)
}
