package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.POST("/:id/toggle-status", handler.ToggleStatus)
		jobs.POST("/:id/hire", handler.Hire)
		jobs.DELETE("/:id", handler.Delete)
	}

	protected.GET("/recruiters/me/jobs", handler.ListMine)
}

type JobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Description  string   `json:"description" binding:"required"`
	FullAdText   string   `json:"full_ad_text"`
	Requirements []string `json:"requirements"`
	ThemeColor   string   `json:"theme_color"`
}

type HireRequest struct {
	CandidateID string `json:"candidate_id" binding:"required"`
}

// Create godoc
// @Summary      Create a job
// @Description  Create a job posting; the auto-match sweep against all candidates runs before the response
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		RecruiterID:  c.GetString(string(domain.KeyUserID)),
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Description:  req.Description,
		FullAdText:   req.FullAdText,
		Requirements: req.Requirements,
		ThemeColor:   req.ThemeColor,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", jobs)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))
	jobs, err := h.jobUC.ListJobsByRecruiter(c.Request.Context(), recruiterID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", jobs)
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		ID:           c.Param("id"),
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Description:  req.Description,
		FullAdText:   req.FullAdText,
		Requirements: req.Requirements,
		ThemeColor:   req.ThemeColor,
	}

	if err := h.jobUC.UpdateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// ToggleStatus godoc
// @Summary      Toggle job between OPEN and FILLED
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Router       /jobs/{id}/toggle-status [post]
// @Security     BearerAuth
func (h *JobHandler) ToggleStatus(c *gin.Context) {
	job, err := h.jobUC.ToggleJobStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status updated", job)
}

// Hire godoc
// @Summary      Mark a job as filled by a candidate
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Job ID"
// @Param        hire  body      HireRequest  true  "Hire JSON"
// @Success      200   {object}  response.Response
// @Router       /jobs/{id}/hire [post]
// @Security     BearerAuth
func (h *JobHandler) Hire(c *gin.Context) {
	var req HireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.jobUC.MarkJobAsFilled(c.Request.Context(), c.Param("id"), req.CandidateID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job marked as filled", nil)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}
