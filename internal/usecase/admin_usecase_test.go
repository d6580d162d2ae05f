package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/internal/usecase"
)

func TestGetCloudStats(t *testing.T) {
	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)

	userRepo.On("Count", mock.Anything).Return(int64(4), nil)
	candidateRepo.On("Count", mock.Anything).Return(int64(10), nil)
	jobRepo.On("Count", mock.Anything).Return(int64(7), nil)
	matchRepo.On("CountOwnershipSplit", mock.Anything).Return(int64(5), int64(2), nil)

	uc := usecase.NewAdminUsecase(userRepo, jobRepo, candidateRepo, matchRepo, testLogger())
	stats, err := uc.GetCloudStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.Users)
	assert.Equal(t, int64(10), stats.Candidates)
	assert.Equal(t, int64(7), stats.Jobs)
	assert.Equal(t, int64(5), stats.InternalMatches)
	assert.Equal(t, int64(2), stats.ExternalMatches)
}

func TestGetCrossRecruiterAudit(t *testing.T) {
	users := []domain.User{
		{ID: "r1", Name: "Alice"},
		{ID: "r2", Name: "Bob"},
	}
	jobs := []domain.Job{
		{ID: "job1", RecruiterID: "r1", Title: "Backend Engineer"},
	}
	candidates := []domain.Candidate{
		{ID: "c1", RecruiterID: "r2", Name: "Dana"},
		{ID: "c2", RecruiterID: "r1", Name: "Eli"},
	}
	matches := []domain.MatchResult{
		// strictly above the threshold, cross-recruiter
		{JobID: "job1", CandidateID: "c1", JobRecruiterID: "r1", CandidateRecruiterID: "r2", Score: 75},
		// exactly at the threshold: excluded
		{JobID: "job1", CandidateID: "c2", JobRecruiterID: "r1", CandidateRecruiterID: "r1", Score: 60},
		// high score but candidate gone: excluded
		{JobID: "job1", CandidateID: "deleted", JobRecruiterID: "r1", CandidateRecruiterID: "r2", Score: 99},
	}

	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)

	matchRepo.On("Fetch", mock.Anything).Return(matches, nil)
	jobRepo.On("Fetch", mock.Anything).Return(jobs, nil)
	candidateRepo.On("Fetch", mock.Anything).Return(candidates, nil)
	userRepo.On("Fetch", mock.Anything).Return(users, nil)

	uc := usecase.NewAdminUsecase(userRepo, jobRepo, candidateRepo, matchRepo, testLogger())
	entries, err := uc.GetCrossRecruiterAudit(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Backend Engineer", entry.JobTitle)
	assert.Equal(t, "Dana", entry.CandidateName)
	assert.Equal(t, "Alice", entry.JobRecruiterName)
	assert.Equal(t, "Bob", entry.CandidateRecruiterName)
	assert.True(t, entry.IsExternal)
}

func TestGetRecruiterStats(t *testing.T) {
	jobs := []domain.Job{
		{ID: "job1", RecruiterID: "r1", Status: domain.JobStatusOpen},
		{ID: "job2", RecruiterID: "r1", Status: domain.JobStatusFilled},
	}
	candidates := []domain.Candidate{
		{ID: "c1", RecruiterID: "r1"},
	}
	matches := []domain.MatchResult{
		// above the high-value bar on the job side
		{JobRecruiterID: "r1", CandidateRecruiterID: "r2", Score: 81},
		// exactly at the bar: excluded
		{JobRecruiterID: "r1", CandidateRecruiterID: "r2", Score: 80},
		// above the bar on the candidate side
		{JobRecruiterID: "r9", CandidateRecruiterID: "r1", Score: 95},
		// above the bar but neither side owned
		{JobRecruiterID: "r9", CandidateRecruiterID: "r9", Score: 95},
	}

	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)

	jobRepo.On("FetchByRecruiterID", mock.Anything, "r1").Return(jobs, nil)
	candidateRepo.On("FetchByRecruiterID", mock.Anything, "r1").Return(candidates, nil)
	matchRepo.On("Fetch", mock.Anything).Return(matches, nil)

	uc := usecase.NewAdminUsecase(userRepo, jobRepo, candidateRepo, matchRepo, testLogger())
	stats, err := uc.GetRecruiterStats(context.Background(), "r1")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalJobs)
	assert.Equal(t, int64(1), stats.TotalCandidates)
	assert.Equal(t, int64(2), stats.ActiveMatches)
	assert.Equal(t, int64(1), stats.FilledJobs)
}

func TestDeleteRecruiterCascade(t *testing.T) {
	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)

	userRepo.On("GetByID", mock.Anything, "r1").Return(&domain.User{ID: "r1"}, nil)
	matchRepo.On("DeleteByRecruiterID", mock.Anything, "r1").Return(nil)
	jobRepo.On("DeleteByRecruiterID", mock.Anything, "r1").Return(nil)
	candidateRepo.On("DeleteByRecruiterID", mock.Anything, "r1").Return(nil)
	userRepo.On("Delete", mock.Anything, "r1").Return(nil)

	uc := usecase.NewAdminUsecase(userRepo, jobRepo, candidateRepo, matchRepo, testLogger())
	err := uc.DeleteRecruiter(context.Background(), "r1")

	assert.NoError(t, err)
	matchRepo.AssertCalled(t, "DeleteByRecruiterID", mock.Anything, "r1")
	jobRepo.AssertCalled(t, "DeleteByRecruiterID", mock.Anything, "r1")
	candidateRepo.AssertCalled(t, "DeleteByRecruiterID", mock.Anything, "r1")
	userRepo.AssertCalled(t, "Delete", mock.Anything, "r1")
}

func TestDeleteRecruiterNotFound(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	uc := usecase.NewAdminUsecase(userRepo, new(MockJobRepo), new(MockCandidateRepo), new(MockMatchRepo), testLogger())
	err := uc.DeleteRecruiter(context.Background(), "missing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
