package api

import (
	"net/http"

	reqdto "card-drop/internal/handler/dto/request"
	resdto "card-drop/internal/handler/dto/response"
	"card-drop/internal/handler/httperr"
	"card-drop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	q            queries.LeaderboardQueries
	defaultLimit int
}

func NewLeaderboardHandler(q queries.LeaderboardQueries, defaultLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{q: q, defaultLimit: defaultLimit}
}

// @Summary Leaderboard
// @Description Participants with at least one claim, highest score first
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Maximum entries (1-100)"
// @Success 200 {array} resdto.LeaderboardEntryResponse
// @Failure 400 {object} map[string]string
// @Router /api/leaderboard [get]
func (h *LeaderboardHandler) Top(c *gin.Context) {
	var query reqdto.LeaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}
	limit := query.Limit
	if limit == 0 {
		limit = h.defaultLimit
	}
	entries, err := h.q.Top(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeaderboard(entries))
}

// @Summary Global stats
// @Tags leaderboard
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /api/stats [get]
func (h *LeaderboardHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(stats))
}
