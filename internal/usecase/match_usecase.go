package usecase

import (
	"context"
	"log/slog"
	"time"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
)

type matchUsecase struct {
	matchRepo     domain.MatchRepository
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
	scorer        domain.MatchScorer
	logger        *slog.Logger
}

func NewMatchUsecase(
	matchRepo domain.MatchRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	scorer domain.MatchScorer,
	logger *slog.Logger,
) domain.MatchUsecase {
	return &matchUsecase{
		matchRepo:     matchRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		scorer:        scorer,
		logger:        logger,
	}
}

// AutoMatchJob runs the creation-triggered sweep for a new job: every
// existing candidate is scored sequentially and pairs reaching the save
// threshold are upserted with owner snapshots from both sides. A failed
// write for one pair does not stop the sweep, and a failed score simply
// lands below the threshold.
func (u *matchUsecase) AutoMatchJob(ctx context.Context, job *domain.Job) (int, error) {
	candidates, err := u.candidateRepo.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	persisted := 0
	for _, candidate := range candidates {
		analysis := u.scorer.Score(ctx, job.Description, candidate.ResumeText)
		if analysis.Score < domain.SaveThreshold {
			continue
		}

		match := &domain.MatchResult{
			JobID:                job.ID,
			CandidateID:          candidate.ID,
			JobRecruiterID:       job.RecruiterID,
			CandidateRecruiterID: candidate.RecruiterID,
			Score:                analysis.Score,
			Reasoning:            analysis.Reasoning,
			IsActive:             true,
			UpdatedAt:            time.Now(),
		}
		if err := u.matchRepo.Upsert(ctx, match); err != nil {
			u.logger.Error("auto-match upsert failed",
				"job_id", job.ID, "candidate_id", candidate.ID, "error", err)
			continue
		}
		persisted++
	}

	return persisted, nil
}

// AutoMatchCandidate is the symmetric sweep for a new candidate. Only
// OPEN jobs participate; filled and archived jobs are excluded from
// auto-matching.
func (u *matchUsecase) AutoMatchCandidate(ctx context.Context, candidate *domain.Candidate) (int, error) {
	jobs, err := u.jobRepo.FetchByStatus(ctx, domain.JobStatusOpen)
	if err != nil {
		return 0, err
	}

	persisted := 0
	for _, job := range jobs {
		analysis := u.scorer.Score(ctx, job.Description, candidate.ResumeText)
		if analysis.Score < domain.SaveThreshold {
			continue
		}

		match := &domain.MatchResult{
			JobID:                job.ID,
			CandidateID:          candidate.ID,
			JobRecruiterID:       job.RecruiterID,
			CandidateRecruiterID: candidate.RecruiterID,
			Score:                analysis.Score,
			Reasoning:            analysis.Reasoning,
			IsActive:             true,
			UpdatedAt:            time.Now(),
		}
		if err := u.matchRepo.Upsert(ctx, match); err != nil {
			u.logger.Error("auto-match upsert failed",
				"job_id", job.ID, "candidate_id", candidate.ID, "error", err)
			continue
		}
		persisted++
	}

	return persisted, nil
}

// RefreshJobMatches re-scores every current candidate against the job,
// keeps the pairs at or above the save threshold sorted by score, and
// replaces the stored set wholesale. A pair that dropped below the
// threshold since the last pass therefore loses its persisted record
// instead of lingering stale.
func (u *matchUsecase) RefreshJobMatches(ctx context.Context, jobID string) ([]domain.MatchResult, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	candidates, err := u.candidateRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		analysis := u.scorer.Score(ctx, job.Description, candidate.ResumeText)
		if analysis.Score < domain.SaveThreshold {
			continue
		}
		results = append(results, domain.MatchResult{
			JobID:                job.ID,
			CandidateID:          candidate.ID,
			JobRecruiterID:       job.RecruiterID,
			CandidateRecruiterID: candidate.RecruiterID,
			Score:                analysis.Score,
			Reasoning:            analysis.Reasoning,
			IsActive:             true,
			UpdatedAt:            time.Now(),
		})
	}

	domain.SortByScoreDesc(results)

	if err := u.matchRepo.ReplaceForJob(ctx, jobID, results); err != nil {
		return nil, err
	}

	u.logger.Info("job matches refreshed", "job_id", jobID, "matches", len(results))
	return results, nil
}

// GetJobMatchView loads the persisted matches for a job and buckets
// them for the matching screen: orphans dropped first, then a stable
// score-descending sort, then the display-threshold split.
func (u *matchUsecase) GetJobMatchView(ctx context.Context, jobID string) (*domain.JobMatchView, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	matches, err := u.matchRepo.FetchByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	candidates, err := u.candidateRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	candidateIDs := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		candidateIDs[c.ID] = true
	}

	valid := domain.FilterOrphans(matches, candidateIDs)
	domain.SortByScoreDesc(valid)
	high, low := domain.PartitionByScore(valid, domain.DisplayThreshold)

	return &domain.JobMatchView{
		JobID:         jobID,
		High:          high,
		Low:           low,
		NewCandidates: len(candidates) - len(valid),
	}, nil
}

func (u *matchUsecase) PurgeBelowThreshold(ctx context.Context) (int64, error) {
	count, err := u.matchRepo.DeleteBelowScore(ctx, domain.SaveThreshold)
	if err != nil {
		return 0, err
	}
	u.logger.Info("purged low quality matches", "count", count)
	return count, nil
}

func (u *matchUsecase) CleanupOrphaned(ctx context.Context) (int64, error) {
	count, err := u.matchRepo.DeleteOrphaned(ctx)
	if err != nil {
		return 0, err
	}
	u.logger.Info("cleaned up orphaned matches", "count", count)
	return count, nil
}
