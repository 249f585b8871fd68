package handlers

import (
	"FoodForAll-Backend/domain"
	"FoodForAll-Backend/internal/api/presenters"
	"FoodForAll-Backend/pkg/leaderboard"

	"github.com/gofiber/fiber/v2"
)

type (
	LeaderboardHandler interface {
		GetLeaderboard(c *fiber.Ctx) error
	}

	leaderboardHandler struct {
		leaderboardService leaderboard.LeaderboardService
	}
)

func NewLeaderboardHandler(leaderboardService leaderboard.LeaderboardService) LeaderboardHandler {
	return &leaderboardHandler{leaderboardService: leaderboardService}
}

func (h *leaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := h.leaderboardService.GetLeaderboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLeaderboard, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetLeaderboard)
}
