package api

import (
	"context"
	"errors"
	"net/http"

	"card-drop/internal/domain/participant"
	reqdto "card-drop/internal/handler/dto/request"
	resdto "card-drop/internal/handler/dto/response"
	"card-drop/internal/handler/httperr"
	"card-drop/internal/pkg/errs"
	"card-drop/internal/usecase/commands"
	"card-drop/internal/usecase/queries"
	"card-drop/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	cmds commands.ClaimCommands
	q    queries.LeaderboardQueries
}

func NewParticipantHandler(cmds commands.ClaimCommands, q queries.LeaderboardQueries) *ParticipantHandler {
	return &ParticipantHandler{cmds: cmds, q: q}
}

// @Summary Claim an item
// @Description Claim a random item if the participant's cooldown has elapsed
// @Tags participants
// @Produce json
// @Param id path int true "Participant ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/participants/{id}/claim [post]
func (h *ParticipantHandler) Claim(c *gin.Context) {
	id, err := participant.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	result, err := shared.WithDefaultRetry(c.Request.Context(), func(ctx context.Context) (*commands.ClaimResult, error) {
		return h.cmds.Claim(ctx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoItemsAvailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "No items available", nil)
		case errs.Is(err, shared.ErrMaxRetriesExceeded), errs.IsTransient(err):
			httperr.AbortWithError(c, http.StatusConflict, err, "Claim already in progress", nil)
		case errs.Is(err, errs.ErrPersistenceFailure):
			// the claim stands in memory; tell the caller it may not survive a restart
			var detail any
			if result != nil {
				detail = resdto.FromClaimResult(result)
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Claim not persisted", detail)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimResult(result))
}

// @Summary Participant status
// @Description Eligibility, remaining cooldown, score and rank
// @Tags participants
// @Produce json
// @Param id path int true "Participant ID"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} map[string]string
// @Router /api/participants/{id}/status [get]
func (h *ParticipantHandler) Status(c *gin.Context) {
	id, err := participant.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.Status(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusView(view))
}

// @Summary Set display name
// @Description Record the participant's display name, creating the participant on first contact
// @Tags participants
// @Accept json
// @Param id path int true "Participant ID"
// @Param request body reqdto.RenameParticipantRequest true "Name"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/participants/{id}/name [put]
func (h *ParticipantHandler) Rename(c *gin.Context) {
	id, err := participant.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RenameParticipantRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	first, last := req.Normalized()
	if first == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("blank first name"), "Invalid request", nil)
		return
	}
	if err = h.cmds.RegisterIdentity(c.Request.Context(), id, first, last); err != nil {
		if errs.Is(err, errs.ErrPersistenceFailure) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Name not persisted", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
