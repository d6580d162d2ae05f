package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/ai/gemini"
	"go-talentmatch-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	matchRepo     domain.MatchRepository
	matchUsecase  domain.MatchUsecase
	toolbox       *gemini.Toolbox
	validate      *validator.Validate
	logger        *slog.Logger
}

func NewCandidateUsecase(
	candidateRepo domain.CandidateRepository,
	matchRepo domain.MatchRepository,
	matchUsecase domain.MatchUsecase,
	toolbox *gemini.Toolbox,
	validate *validator.Validate,
	logger *slog.Logger,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		matchRepo:     matchRepo,
		matchUsecase:  matchUsecase,
		toolbox:       toolbox,
		validate:      validate,
		logger:        logger,
	}
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, candidate *domain.Candidate) error {
	if err := u.validate.Struct(candidate); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	if candidate.QuestionnaireStatus == "" {
		candidate.QuestionnaireStatus = domain.QuestionnaireNotSent
	}
	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if err := u.candidateRepo.Create(ctx, candidate); err != nil {
		return err
	}

	persisted, err := u.matchUsecase.AutoMatchCandidate(ctx, candidate)
	if err != nil {
		u.logger.Error("auto-match sweep failed for new candidate", "candidate_id", candidate.ID, "error", err)
		return nil
	}
	u.logger.Info("candidate created", "candidate_id", candidate.ID, "matches", persisted)
	return nil
}

func (u *candidateUsecase) GenerateCandidate(ctx context.Context, recruiterID, resumeText string) (*domain.Candidate, error) {
	profile, err := u.toolbox.GenerateResumeProfile(ctx, resumeText)
	if err != nil {
		return nil, err
	}

	candidate := candidateFromProfile(profile)
	candidate.RecruiterID = recruiterID
	if err := u.CreateCandidate(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) RefineCandidate(ctx context.Context, id, instruction string) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}

	current := profileFromCandidate(candidate)
	refined, err := u.toolbox.RefineResumeProfile(ctx, current, instruction)
	if err != nil {
		return nil, err
	}

	applyProfile(candidate, refined)
	candidate.UpdatedAt = time.Now()
	if err := u.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	return u.candidateRepo.Fetch(ctx)
}

func (u *candidateUsecase) ListCandidatesByRecruiter(ctx context.Context, recruiterID string) ([]domain.Candidate, error) {
	return u.candidateRepo.FetchByRecruiterID(ctx, recruiterID)
}

func (u *candidateUsecase) UpdateCandidate(ctx context.Context, candidate *domain.Candidate) error {
	if err := u.validate.Struct(candidate); err != nil {
		return apperror.BadRequest(err.Error())
	}
	existing, err := u.candidateRepo.GetByID(ctx, candidate.ID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Candidate not found")
		}
		return err
	}
	candidate.RecruiterID = existing.RecruiterID
	candidate.CreatedAt = existing.CreatedAt
	if candidate.AvatarURL == "" {
		candidate.AvatarURL = existing.AvatarURL
	}
	candidate.UpdatedAt = time.Now()
	return u.candidateRepo.Update(ctx, candidate)
}

func (u *candidateUsecase) SetCandidateAvatar(ctx context.Context, id, avatarURL string) error {
	if err := u.candidateRepo.UpdateAvatarURL(ctx, id, avatarURL); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Candidate not found")
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id string) error {
	if err := u.candidateRepo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Candidate not found")
		}
		return err
	}
	if err := u.matchRepo.DeleteByCandidateID(ctx, id); err != nil {
		u.logger.Error("match cascade failed for deleted candidate", "candidate_id", id, "error", err)
		return err
	}
	return nil
}

func candidateFromProfile(p *domain.ResumeProfile) *domain.Candidate {
	return &domain.Candidate{
		Name:       p.FullName,
		Title:      p.CurrentTitle,
		Department: p.Department,
		Field:      p.Field,
		Experience: p.ExperienceSummary,
		Skills:     p.Skills,
		ResumeText: p.FullResumeText,
		Email:      p.ContactEmail,
		Phone:      p.ContactPhone,
		ThemeColor: p.ThemeColor,
	}
}

func profileFromCandidate(c *domain.Candidate) *domain.ResumeProfile {
	return &domain.ResumeProfile{
		FullName:          c.Name,
		CurrentTitle:      c.Title,
		Department:        c.Department,
		Field:             c.Field,
		ContactEmail:      c.Email,
		ContactPhone:      c.Phone,
		ExperienceSummary: c.Experience,
		Skills:            c.Skills,
		FullResumeText:    c.ResumeText,
		ThemeColor:        c.ThemeColor,
	}
}

func applyProfile(c *domain.Candidate, p *domain.ResumeProfile) {
	c.Name = p.FullName
	c.Title = p.CurrentTitle
	c.Department = p.Department
	c.Field = p.Field
	c.Experience = p.ExperienceSummary
	c.Skills = p.Skills
	c.ResumeText = p.FullResumeText
	c.Email = p.ContactEmail
	c.Phone = p.ContactPhone
	if p.ThemeColor != "" {
		c.ThemeColor = p.ThemeColor
	}
}
