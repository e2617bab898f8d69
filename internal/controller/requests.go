package controller

import (
	"errors"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type MoveRequest struct {
	From model.Square `json:"from"`
	To   model.Square `json:"to"`
}

type PromotionRequest struct {
	Type model.PieceType `json:"type"`
}

type SelectRequest struct {
	Square model.Square `json:"square"`
}

// statusFor maps service and engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrGameFull),
		errors.Is(err, service.ErrNotSeated),
		errors.Is(err, service.ErrNotYourTurn):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrPromotionRequired),
		errors.Is(err, model.ErrNoPendingPromotion),
		errors.Is(err, model.ErrEmptyHistory):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrOutOfBounds),
		errors.Is(err, model.ErrInvalidPromotion):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrInvalidGeometry),
		errors.Is(err, model.ErrSelfCheck),
		errors.Is(err, model.ErrWrongTurn),
		errors.Is(err, model.ErrNoPiece):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
