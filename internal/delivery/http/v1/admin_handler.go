package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-talentmatch-backend/internal/delivery/http/middleware"
	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
	matchUC domain.MatchUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, matchUC domain.MatchUsecase) {
	handler := &AdminHandler{adminUC: adminUC, matchUC: matchUC}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/stats", handler.CloudStats)
		admin.GET("/audit", handler.Audit)
		admin.GET("/audit/export", handler.ExportAudit)
		admin.GET("/recruiters", handler.ListRecruiters)
		admin.GET("/recruiters/:id/stats", handler.RecruiterStats)
		admin.DELETE("/recruiters/:id", handler.DeleteRecruiter)
		admin.POST("/maintenance/purge-low-scores", handler.PurgeLowScores)
		admin.POST("/maintenance/cleanup-orphans", handler.CleanupOrphans)
		admin.DELETE("/data/jobs", handler.DeleteAllJobs)
		admin.DELETE("/data/candidates", handler.DeleteAllCandidates)
		admin.DELETE("/data/matches", handler.DeleteAllMatches)
		admin.DELETE("/data/recruiters", handler.DeleteAllRecruiters)
	}
}

// CloudStats godoc
// @Summary      Data management overview
// @Description  Row counts for all collections plus the internal/external match split
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) CloudStats(c *gin.Context) {
	stats, err := h.adminUC.GetCloudStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", stats)
}

// Audit godoc
// @Summary      Cross-recruiter match audit
// @Description  High scoring matches with both sides resolved, score descending
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/audit [get]
// @Security     BearerAuth
func (h *AdminHandler) Audit(c *gin.Context) {
	entries, err := h.adminUC.GetCrossRecruiterAudit(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", entries)
}

// ExportAudit godoc
// @Summary      Download the audit table as an Excel workbook
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /admin/audit/export [get]
// @Security     BearerAuth
func (h *AdminHandler) ExportAudit(c *gin.Context) {
	data, filename, err := h.adminUC.ExportAudit(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *AdminHandler) ListRecruiters(c *gin.Context) {
	overviews, err := h.adminUC.ListRecruiters(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", overviews)
}

func (h *AdminHandler) RecruiterStats(c *gin.Context) {
	stats, err := h.adminUC.GetRecruiterStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", stats)
}

// DeleteRecruiter godoc
// @Summary      Delete a recruiter with full cascade
// @Description  Removes the recruiter's jobs, candidates and every match referencing them
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Recruiter ID"
// @Success      200  {object}  response.Response
// @Router       /admin/recruiters/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteRecruiter(c *gin.Context) {
	id := c.Param("id")
	if id == c.GetString(string(domain.KeyUserID)) {
		c.Error(apperror.BadRequest("Cannot delete your own account"))
		return
	}

	if err := h.adminUC.DeleteRecruiter(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter deleted", nil)
}

func (h *AdminHandler) PurgeLowScores(c *gin.Context) {
	count, err := h.matchUC.PurgeBelowThreshold(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Low quality matches purged", gin.H{"deleted": count})
}

func (h *AdminHandler) CleanupOrphans(c *gin.Context) {
	count, err := h.matchUC.CleanupOrphaned(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Orphaned matches cleaned up", gin.H{"deleted": count})
}

func (h *AdminHandler) DeleteAllJobs(c *gin.Context) {
	count, err := h.adminUC.DeleteAllJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All jobs deleted", gin.H{"deleted": count})
}

func (h *AdminHandler) DeleteAllCandidates(c *gin.Context) {
	count, err := h.adminUC.DeleteAllCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All candidates deleted", gin.H{"deleted": count})
}

func (h *AdminHandler) DeleteAllMatches(c *gin.Context) {
	count, err := h.adminUC.DeleteAllMatches(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All matches deleted", gin.H{"deleted": count})
}

func (h *AdminHandler) DeleteAllRecruiters(c *gin.Context) {
	keepID := c.GetString(string(domain.KeyUserID))
	count, err := h.adminUC.DeleteAllRecruiters(c.Request.Context(), keepID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All recruiters deleted", gin.H{"deleted": count})
}
