package v1

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"

	"go-talentmatch-backend/internal/delivery/http/middleware"
	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
	"go-talentmatch-backend/pkg/storage"
)

const maxAvatarBytes = 5 << 20

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	uploader    *storage.Uploader
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, uploader *storage.Uploader) {
	handler := &CandidateHandler{candidateUC: candidateUC, uploader: uploader}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.POST("", handler.Create)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}

	aiCandidates := protected.Group("/candidates")
	aiCandidates.Use(middleware.RateLimitMiddleware(middleware.AIRateLimitConfig()))
	{
		aiCandidates.POST("/generate", handler.Generate)
		aiCandidates.POST("/:id/refine", handler.Refine)
	}

	uploads := protected.Group("/candidates")
	uploads.Use(middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()))
	{
		uploads.POST("/:id/avatar", handler.UploadAvatar)
	}

	protected.GET("/recruiters/me/candidates", handler.ListMine)
}

type CandidateRequest struct {
	Name       string   `json:"name" binding:"required"`
	Title      string   `json:"title"`
	Department string   `json:"department"`
	Field      string   `json:"field"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	ResumeText string   `json:"resume_text" binding:"required"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	LinkedIn   string   `json:"linkedin"`
	ThemeColor string   `json:"theme_color"`
}

type GenerateCandidateRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
}

type RefineCandidateRequest struct {
	Instruction string `json:"instruction" binding:"required"`
}

// Create godoc
// @Summary      Create a candidate
// @Description  Create a candidate profile; the auto-match sweep against all OPEN jobs runs before the response
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CandidateRequest  true  "Candidate JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate := h.candidateFromRequest(c, &req)
	if err := h.candidateUC.CreateCandidate(c.Request.Context(), candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// Generate godoc
// @Summary      Generate a candidate profile from raw resume text
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        resume  body      GenerateCandidateRequest  true  "Resume JSON"
// @Success      201  {object}  response.Response
// @Router       /candidates/generate [post]
// @Security     BearerAuth
func (h *CandidateHandler) Generate(c *gin.Context) {
	var req GenerateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recruiterID := c.GetString(string(domain.KeyUserID))
	candidate, err := h.candidateUC.GenerateCandidate(c.Request.Context(), recruiterID, req.ResumeText)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate generated", candidate)
}

// Refine godoc
// @Summary      Refine a candidate profile with a free-text instruction
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id           path      string                  true  "Candidate ID"
// @Param        instruction  body      RefineCandidateRequest  true  "Instruction JSON"
// @Success      200  {object}  response.Response
// @Router       /candidates/{id}/refine [post]
// @Security     BearerAuth
func (h *CandidateHandler) Refine(c *gin.Context) {
	var req RefineCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.RefineCandidate(c.Request.Context(), c.Param("id"), req.Instruction)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate refined", candidate)
}

func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", candidates)
}

func (h *CandidateHandler) ListMine(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))
	candidates, err := h.candidateUC.ListCandidatesByRecruiter(c.Request.Context(), recruiterID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", candidates)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", candidate)
}

func (h *CandidateHandler) Update(c *gin.Context) {
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate := h.candidateFromRequest(c, &req)
	candidate.ID = c.Param("id")
	if err := h.candidateUC.UpdateCandidate(c.Request.Context(), candidate); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.DeleteCandidate(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}

// UploadAvatar godoc
// @Summary      Upload a candidate avatar
// @Description  Accepts an image, recompresses it to a bounded JPEG and stores it
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Candidate ID"
// @Param        file  formData  file    true  "Avatar image"
// @Success      200   {object}  response.Response
// @Router       /candidates/{id}/avatar [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadAvatar(c *gin.Context) {
	if h.uploader == nil {
		c.Error(apperror.Unavailable("Storage not configured"))
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}
	if file.Size > maxAvatarBytes {
		c.Error(apperror.BadRequest("File too large"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := http.DetectContentType(fileBytes)
	if !strings.HasPrefix(contentType, "image/") {
		c.Error(apperror.BadRequest("File is not an image"))
		return
	}

	compressed, err := compressImage(fileBytes, 512, 80)
	if err != nil {
		c.Error(apperror.BadRequest("Could not decode image"))
		return
	}

	key := fmt.Sprintf("avatars/%s_%d.jpg", candidate.ID, time.Now().UnixNano())
	url, err := h.uploader.Upload(c.Request.Context(), key, compressed, "image/jpeg")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.SetCandidateAvatar(c.Request.Context(), candidate.ID, url); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Avatar uploaded", gin.H{"url": url})
}

func (h *CandidateHandler) candidateFromRequest(c *gin.Context, req *CandidateRequest) *domain.Candidate {
	return &domain.Candidate{
		RecruiterID: c.GetString(string(domain.KeyUserID)),
		Name:        req.Name,
		Title:       req.Title,
		Department:  req.Department,
		Field:       req.Field,
		Experience:  req.Experience,
		Skills:      req.Skills,
		ResumeText:  req.ResumeText,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedIn:    req.LinkedIn,
		ThemeColor:  req.ThemeColor,
	}
}

// compressImage scales the image down to maxDimension on its longest
// side and re-encodes as JPEG.
func compressImage(data []byte, maxDimension, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image (format %q): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width >= height && width > maxDimension {
		newWidth = maxDimension
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else if height > width && height > maxDimension {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
