package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"free-game-tracker/internal/common/logger"
	"free-game-tracker/internal/common/middleware"
	"free-game-tracker/internal/features/giveaway/models"
	giveawayservice "free-game-tracker/internal/features/giveaway/service"
)

// fetchFailedMessage is the only error text clients ever see from /giveaways.
const fetchFailedMessage = "Failed to fetch giveaways"

type GiveawayHandler struct {
	service giveawayservice.GatewayService
}

func NewGiveawayHandler(service giveawayservice.GatewayService) *GiveawayHandler {
	return &GiveawayHandler{service: service}
}

func (h *GiveawayHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/giveaways", h.list)
}

// @Summary Список раздач
// @Description Возвращает текущий список раздач внешнего API без изменений
// @Tags giveaways
// @Produce json
// @Success 200 {array} models.SwaggerGiveaway "Раздачи в формате внешнего API"
// @Failure 500 {object} models.FetchErrorResponse "Внешний API недоступен"
// @Router /giveaways [get]
func (h *GiveawayHandler) list(c *gin.Context) {
	payload, err := h.service.ListGiveaways(c.Request.Context())
	if err != nil {
		logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("Failed to fetch giveaways")
		c.JSON(http.StatusInternalServerError, models.FetchErrorResponse{Error: fetchFailedMessage})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
