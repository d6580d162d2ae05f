package usecase_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/internal/usecase"
)

type MockMatchUsecase struct {
	mock.Mock
}

func (m *MockMatchUsecase) AutoMatchJob(ctx context.Context, job *domain.Job) (int, error) {
	args := m.Called(ctx, job)
	return args.Int(0), args.Error(1)
}
func (m *MockMatchUsecase) AutoMatchCandidate(ctx context.Context, candidate *domain.Candidate) (int, error) {
	args := m.Called(ctx, candidate)
	return args.Int(0), args.Error(1)
}
func (m *MockMatchUsecase) RefreshJobMatches(ctx context.Context, jobID string) ([]domain.MatchResult, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchResult), args.Error(1)
}
func (m *MockMatchUsecase) GetJobMatchView(ctx context.Context, jobID string) (*domain.JobMatchView, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobMatchView), args.Error(1)
}
func (m *MockMatchUsecase) PurgeBelowThreshold(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMatchUsecase) CleanupOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateJobRunsAutoMatch(t *testing.T) {
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)
	matchUC := new(MockMatchUsecase)

	jobRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	matchUC.On("AutoMatchJob", mock.Anything, mock.Anything).Return(3, nil)

	uc := usecase.NewJobUsecase(jobRepo, matchRepo, matchUC, validator.New(), testLogger())
	job := &domain.Job{Title: "Backend Engineer", Description: "Go"}
	err := uc.CreateJob(context.Background(), job)

	assert.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, domain.JobStatusOpen, job.Status)
	matchUC.AssertCalled(t, "AutoMatchJob", mock.Anything, job)
}

func TestToggleJobStatus(t *testing.T) {
	t.Run("open becomes filled", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{ID: "job1", Status: domain.JobStatusOpen}, nil)
		jobRepo.On("UpdateStatus", mock.Anything, "job1", domain.JobStatusFilled, mock.Anything).Return(nil)

		uc := usecase.NewJobUsecase(jobRepo, new(MockMatchRepo), new(MockMatchUsecase), validator.New(), testLogger())
		job, err := uc.ToggleJobStatus(context.Background(), "job1")

		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusFilled, job.Status)
	})

	t.Run("filled reopens and clears the hire", func(t *testing.T) {
		hired := "c1"
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", Status: domain.JobStatusFilled, HiredCandidateID: &hired,
		}, nil)
		jobRepo.On("UpdateStatus", mock.Anything, "job1", domain.JobStatusOpen, (*string)(nil)).Return(nil)

		uc := usecase.NewJobUsecase(jobRepo, new(MockMatchRepo), new(MockMatchUsecase), validator.New(), testLogger())
		job, err := uc.ToggleJobStatus(context.Background(), "job1")

		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusOpen, job.Status)
		assert.Nil(t, job.HiredCandidateID)
	})
}

func TestMarkJobAsFilled(t *testing.T) {
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)

	jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{ID: "job1"}, nil)
	jobRepo.On("UpdateStatus", mock.Anything, "job1", domain.JobStatusFilled, mock.Anything).Return(nil)
	matchRepo.On("MarkPlaced", mock.Anything, "job1", "c1").Return(nil)

	uc := usecase.NewJobUsecase(jobRepo, matchRepo, new(MockMatchUsecase), validator.New(), testLogger())
	err := uc.MarkJobAsFilled(context.Background(), "job1", "c1")

	assert.NoError(t, err)
	matchRepo.AssertCalled(t, "MarkPlaced", mock.Anything, "job1", "c1")
}

func TestDeleteJobCascadesMatches(t *testing.T) {
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)

	jobRepo.On("Delete", mock.Anything, "job1").Return(nil)
	matchRepo.On("DeleteByJobID", mock.Anything, "job1").Return(nil)

	uc := usecase.NewJobUsecase(jobRepo, matchRepo, new(MockMatchUsecase), validator.New(), testLogger())
	err := uc.DeleteJob(context.Background(), "job1")

	assert.NoError(t, err)
	matchRepo.AssertCalled(t, "DeleteByJobID", mock.Anything, "job1")
}
