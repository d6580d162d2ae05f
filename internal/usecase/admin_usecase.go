package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
	"go-talentmatch-backend/pkg/export"
)

// statsReadTimeout bounds the bulk stats read across all four tables.
const statsReadTimeout = 8 * time.Second

type adminUsecase struct {
	userRepo      domain.UserRepository
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
	matchRepo     domain.MatchRepository
	logger        *slog.Logger
}

func NewAdminUsecase(
	userRepo domain.UserRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	matchRepo domain.MatchRepository,
	logger *slog.Logger,
) domain.AdminUsecase {
	return &adminUsecase{
		userRepo:      userRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		matchRepo:     matchRepo,
		logger:        logger,
	}
}

func (u *adminUsecase) GetCloudStats(ctx context.Context) (*domain.CloudStats, error) {
	ctx, cancel := context.WithTimeout(ctx, statsReadTimeout)
	defer cancel()

	users, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, statsError(err)
	}
	candidates, err := u.candidateRepo.Count(ctx)
	if err != nil {
		return nil, statsError(err)
	}
	jobs, err := u.jobRepo.Count(ctx)
	if err != nil {
		return nil, statsError(err)
	}
	internal, external, err := u.matchRepo.CountOwnershipSplit(ctx)
	if err != nil {
		return nil, statsError(err)
	}

	return &domain.CloudStats{
		Users:           users,
		Candidates:      candidates,
		Jobs:            jobs,
		InternalMatches: internal,
		ExternalMatches: external,
	}, nil
}

func statsError(err error) error {
	if err == context.DeadlineExceeded {
		return apperror.Unavailable("Stats read timed out")
	}
	return err
}

// GetCrossRecruiterAudit builds the admin audit table: every match
// scoring strictly above the audit threshold whose job and candidate
// both still exist, with owner names resolved and the external flag
// derived from the stored snapshots. Rows come back score-descending.
func (u *adminUsecase) GetCrossRecruiterAudit(ctx context.Context) ([]domain.AuditEntry, error) {
	matches, err := u.matchRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := u.candidateRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.userRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	jobsByID := make(map[string]domain.Job, len(jobs))
	for _, j := range jobs {
		jobsByID[j.ID] = j
	}
	candidatesByID := make(map[string]domain.Candidate, len(candidates))
	for _, c := range candidates {
		candidatesByID[c.ID] = c
	}
	namesByID := make(map[string]string, len(users))
	for _, usr := range users {
		namesByID[usr.ID] = usr.Name
	}

	entries := make([]domain.AuditEntry, 0, len(matches))
	for _, m := range matches {
		if m.Score <= domain.AuditThreshold {
			continue
		}
		job, jobOK := jobsByID[m.JobID]
		candidate, candOK := candidatesByID[m.CandidateID]
		if !jobOK || !candOK {
			continue
		}
		entries = append(entries, domain.AuditEntry{
			Match:                  m,
			JobTitle:               job.Title,
			CandidateName:          candidate.Name,
			JobRecruiterName:       namesByID[m.JobRecruiterID],
			CandidateRecruiterName: namesByID[m.CandidateRecruiterID],
			IsExternal:             !m.IsInternal(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Match.Score > entries[j].Match.Score
	})
	return entries, nil
}

func (u *adminUsecase) GetRecruiterStats(ctx context.Context, recruiterID string) (*domain.RecruiterStats, error) {
	jobs, err := u.jobRepo.FetchByRecruiterID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	candidates, err := u.candidateRepo.FetchByRecruiterID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	matches, err := u.matchRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	var filled int64
	for _, j := range jobs {
		if j.Status == domain.JobStatusFilled {
			filled++
		}
	}

	var active int64
	for _, m := range matches {
		if m.Score <= domain.HighValueThreshold {
			continue
		}
		if m.JobRecruiterID == recruiterID || m.CandidateRecruiterID == recruiterID {
			active++
		}
	}

	return &domain.RecruiterStats{
		TotalJobs:       int64(len(jobs)),
		TotalCandidates: int64(len(candidates)),
		ActiveMatches:   active,
		FilledJobs:      filled,
	}, nil
}

func (u *adminUsecase) ListRecruiters(ctx context.Context) ([]domain.RecruiterOverview, error) {
	users, err := u.userRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := u.candidateRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	jobCounts := make(map[string]int64)
	for _, j := range jobs {
		jobCounts[j.RecruiterID]++
	}
	candidateCounts := make(map[string]int64)
	for _, c := range candidates {
		candidateCounts[c.RecruiterID]++
	}

	overviews := make([]domain.RecruiterOverview, 0, len(users))
	for _, usr := range users {
		overviews = append(overviews, domain.RecruiterOverview{
			User:           usr,
			JobCount:       jobCounts[usr.ID],
			CandidateCount: candidateCounts[usr.ID],
		})
	}
	return overviews, nil
}

// DeleteRecruiter cascades recruiter removal: owned jobs, owned
// candidates, every match referencing the recruiter on either owner
// snapshot, then the user record.
func (u *adminUsecase) DeleteRecruiter(ctx context.Context, recruiterID string) error {
	if _, err := u.userRepo.GetByID(ctx, recruiterID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Recruiter not found")
		}
		return err
	}

	if err := u.matchRepo.DeleteByRecruiterID(ctx, recruiterID); err != nil {
		return err
	}
	if err := u.jobRepo.DeleteByRecruiterID(ctx, recruiterID); err != nil {
		return err
	}
	if err := u.candidateRepo.DeleteByRecruiterID(ctx, recruiterID); err != nil {
		return err
	}
	if err := u.userRepo.Delete(ctx, recruiterID); err != nil {
		return err
	}
	u.logger.Info("recruiter deleted with cascade", "recruiter_id", recruiterID)
	return nil
}

func (u *adminUsecase) DeleteAllJobs(ctx context.Context) (int64, error) {
	if _, err := u.matchRepo.DeleteAll(ctx); err != nil {
		return 0, err
	}
	return u.jobRepo.DeleteAll(ctx)
}

func (u *adminUsecase) DeleteAllCandidates(ctx context.Context) (int64, error) {
	if _, err := u.matchRepo.DeleteAll(ctx); err != nil {
		return 0, err
	}
	return u.candidateRepo.DeleteAll(ctx)
}

func (u *adminUsecase) DeleteAllMatches(ctx context.Context) (int64, error) {
	return u.matchRepo.DeleteAll(ctx)
}

func (u *adminUsecase) DeleteAllRecruiters(ctx context.Context, keepUserID string) (int64, error) {
	if _, err := u.matchRepo.DeleteAll(ctx); err != nil {
		return 0, err
	}
	if _, err := u.jobRepo.DeleteAll(ctx); err != nil {
		return 0, err
	}
	if _, err := u.candidateRepo.DeleteAll(ctx); err != nil {
		return 0, err
	}
	return u.userRepo.DeleteAllExcept(ctx, keepUserID)
}

func (u *adminUsecase) ExportAudit(ctx context.Context) ([]byte, string, error) {
	entries, err := u.GetCrossRecruiterAudit(ctx)
	if err != nil {
		return nil, "", err
	}
	return export.AuditWorkbook(entries)
}
