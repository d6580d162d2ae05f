package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	matchRepo    domain.MatchRepository
	matchUsecase domain.MatchUsecase
	validate     *validator.Validate
	logger       *slog.Logger
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	matchRepo domain.MatchRepository,
	matchUsecase domain.MatchUsecase,
	validate *validator.Validate,
	logger *slog.Logger,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		matchRepo:    matchRepo,
		matchUsecase: matchUsecase,
		validate:     validate,
		logger:       logger,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return err
	}

	// The sweep runs inline so the caller gets a fully matched job back.
	persisted, err := u.matchUsecase.AutoMatchJob(ctx, job)
	if err != nil {
		u.logger.Error("auto-match sweep failed for new job", "job_id", job.ID, "error", err)
		return nil
	}
	u.logger.Info("job created", "job_id", job.ID, "matches", persisted)
	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return u.jobRepo.Fetch(ctx)
}

func (u *jobUsecase) ListJobsByRecruiter(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	return u.jobRepo.FetchByRecruiterID(ctx, recruiterID)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.Job) error {
	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(err.Error())
	}
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	job.RecruiterID = existing.RecruiterID
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()
	return u.jobRepo.Update(ctx, job)
}

// ToggleJobStatus flips OPEN to FILLED and anything else back to OPEN.
// Reopening a job clears the hired candidate reference.
func (u *jobUsecase) ToggleJobStatus(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	next := domain.JobStatusOpen
	var hired *string
	if job.Status == domain.JobStatusOpen {
		next = domain.JobStatusFilled
		hired = job.HiredCandidateID
	}
	if err := u.jobRepo.UpdateStatus(ctx, id, next, hired); err != nil {
		return nil, err
	}
	job.Status = next
	job.HiredCandidateID = hired
	return job, nil
}

func (u *jobUsecase) MarkJobAsFilled(ctx context.Context, jobID, candidateID string) error {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if err := u.jobRepo.UpdateStatus(ctx, jobID, domain.JobStatusFilled, &candidateID); err != nil {
		return err
	}
	if err := u.matchRepo.MarkPlaced(ctx, jobID, candidateID); err != nil {
		u.logger.Error("failed to mark match placed", "job_id", jobID, "candidate_id", candidateID, "error", err)
	}
	u.logger.Info("job filled", "job_id", jobID, "candidate_id", candidateID)
	return nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if err := u.matchRepo.DeleteByJobID(ctx, id); err != nil {
		u.logger.Error("match cascade failed for deleted job", "job_id", id, "error", err)
		return err
	}
	return nil
}
