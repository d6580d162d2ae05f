package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-talentmatch-backend/internal/delivery/http/middleware"
	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/ai/gemini"
	"go-talentmatch-backend/pkg/apperror"
)

type AIToolsHandler struct {
	scorer  *gemini.Scorer
	toolbox *gemini.Toolbox
}

func NewAIToolsHandler(protected *gin.RouterGroup, scorer *gemini.Scorer, toolbox *gemini.Toolbox) {
	handler := &AIToolsHandler{scorer: scorer, toolbox: toolbox}

	ai := protected.Group("/ai")
	ai.Use(middleware.RateLimitMiddleware(middleware.AIRateLimitConfig()))
	{
		ai.POST("/analyze", handler.Analyze)
		ai.POST("/analyze/raw", handler.AnalyzeRaw)
		ai.POST("/job-ad", handler.GenerateJobAd)
		ai.POST("/job-ad/refine", handler.RefineJobAd)
		ai.POST("/questionnaires", handler.GenerateQuestionnaires)
		ai.POST("/questionnaires/single", handler.GenerateSingleQuestionnaire)
		ai.POST("/interview-evaluation", handler.EvaluateInterview)
	}
}

type AnalyzeRequest struct {
	JobText    string `json:"job_text" binding:"required"`
	ResumeText string `json:"resume_text" binding:"required"`
}

type AnalyzeRawRequest struct {
	Input string `json:"input" binding:"required"`
}

type JobAdRequest struct {
	Input string `json:"input" binding:"required"`
}

type RefineJobAdRequest struct {
	Current     domain.JobAdDraft `json:"current" binding:"required"`
	Instruction string            `json:"instruction" binding:"required"`
}

type QuestionnairesRequest struct {
	JobDescription  string `json:"job_description" binding:"required"`
	CandidateResume string `json:"candidate_resume"`
	JobTitle        string `json:"job_title"`
	CandidateName   string `json:"candidate_name"`
}

type SingleQuestionnaireRequest struct {
	Topic    string `json:"topic" binding:"required"`
	JobTitle string `json:"job_title" binding:"required"`
}

type InterviewEvaluationRequest struct {
	JobDescription string                 `json:"job_description" binding:"required"`
	Questionnaires []domain.Questionnaire `json:"questionnaires" binding:"required"`
}

// Analyze godoc
// @Summary      Ad-hoc dual match analysis
// @Description  Scores a job/resume pair with pros and cons; failures degrade to a zero score
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        pair  body      AnalyzeRequest  true  "Pair JSON"
// @Success      200   {object}  response.Response
// @Router       /ai/analyze [post]
// @Security     BearerAuth
func (h *AIToolsHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	analysis := h.scorer.AnalyzeDual(c.Request.Context(), req.JobText, req.ResumeText)
	response.Success(c, http.StatusOK, "OK", analysis)
}

func (h *AIToolsHandler) AnalyzeRaw(c *gin.Context) {
	var req AnalyzeRawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	analysis := h.scorer.AnalyzeRaw(c.Request.Context(), req.Input)
	response.Success(c, http.StatusOK, "OK", analysis)
}

// GenerateJobAd godoc
// @Summary      Generate a structured job ad from free text
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        input  body      JobAdRequest  true  "Input JSON"
// @Success      200    {object}  response.Response
// @Router       /ai/job-ad [post]
// @Security     BearerAuth
func (h *AIToolsHandler) GenerateJobAd(c *gin.Context) {
	var req JobAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	draft, err := h.toolbox.GenerateJobAd(c.Request.Context(), req.Input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", draft)
}

func (h *AIToolsHandler) RefineJobAd(c *gin.Context) {
	var req RefineJobAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	draft, err := h.toolbox.RefineJobAd(c.Request.Context(), &req.Current, req.Instruction)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", draft)
}

// GenerateQuestionnaires builds tailored questionnaires when a resume
// is given and a generic set otherwise.
func (h *AIToolsHandler) GenerateQuestionnaires(c *gin.Context) {
	var req QuestionnairesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	var (
		questionnaires []domain.Questionnaire
		err            error
	)
	if req.CandidateResume != "" {
		questionnaires, err = h.toolbox.GenerateTailoredQuestionnaires(c.Request.Context(), req.JobDescription, req.CandidateResume)
	} else {
		questionnaires, err = h.toolbox.GenerateQuestionnaireSet(c.Request.Context(), req.JobTitle, req.CandidateName)
	}
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", questionnaires)
}

func (h *AIToolsHandler) GenerateSingleQuestionnaire(c *gin.Context) {
	var req SingleQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	questionnaire, err := h.toolbox.GenerateSingleQuestionnaire(c.Request.Context(), req.Topic, req.JobTitle)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", questionnaire)
}

// EvaluateInterview godoc
// @Summary      Evaluate completed questionnaire answers
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        answers  body      InterviewEvaluationRequest  true  "Answers JSON"
// @Success      200      {object}  response.Response
// @Router       /ai/interview-evaluation [post]
// @Security     BearerAuth
func (h *AIToolsHandler) EvaluateInterview(c *gin.Context) {
	var req InterviewEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	evaluation, err := h.toolbox.AnalyzeInterviewAnswers(c.Request.Context(), req.JobDescription, req.Questionnaires)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", evaluation)
}
