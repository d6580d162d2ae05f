package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-talentmatch-backend/internal/delivery/http/middleware"
	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(protected *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	protected.GET("/jobs/:id/matches", handler.GetView)

	refresh := protected.Group("/jobs")
	refresh.Use(middleware.RateLimitMiddleware(middleware.AIRateLimitConfig()))
	{
		refresh.POST("/:id/matches/refresh", handler.Refresh)
	}
}

// GetView godoc
// @Summary      Job matching screen
// @Description  Persisted matches for a job, orphan-filtered and split at the display threshold
// @Tags         matches
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/matches [get]
// @Security     BearerAuth
func (h *MatchHandler) GetView(c *gin.Context) {
	view, err := h.matchUC.GetJobMatchView(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", view)
}

// Refresh godoc
// @Summary      Re-score all candidates against a job
// @Description  Replaces the job's stored match set wholesale with fresh scores
// @Tags         matches
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/matches/refresh [post]
// @Security     BearerAuth
func (h *MatchHandler) Refresh(c *gin.Context) {
	matches, err := h.matchUC.RefreshJobMatches(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Matches refreshed", matches)
}
