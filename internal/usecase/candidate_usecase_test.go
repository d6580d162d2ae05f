package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/internal/usecase"
)

func newCandidateUsecase(candidateRepo *MockCandidateRepo, matchRepo *MockMatchRepo, matchUC *MockMatchUsecase) domain.CandidateUsecase {
	return usecase.NewCandidateUsecase(candidateRepo, matchRepo, matchUC, nil, validator.New(), testLogger())
}

func TestCreateCandidate_RunsAutoMatchSweep(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)
	matchUC := new(MockMatchUsecase)
	uc := newCandidateUsecase(candidateRepo, matchRepo, matchUC)

	candidate := &domain.Candidate{Name: "Dana Levi", ResumeText: "Senior backend engineer"}

	candidateRepo.On("Create", mock.Anything, candidate).Return(nil)
	matchUC.On("AutoMatchCandidate", mock.Anything, candidate).Return(3, nil)

	err := uc.CreateCandidate(context.Background(), candidate)

	assert.NoError(t, err)
	assert.NotEmpty(t, candidate.ID)
	assert.Equal(t, domain.QuestionnaireNotSent, candidate.QuestionnaireStatus)
	candidateRepo.AssertExpectations(t)
	matchUC.AssertExpectations(t)
}

func TestCreateCandidate_SweepFailureDoesNotFailCreate(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)
	matchUC := new(MockMatchUsecase)
	uc := newCandidateUsecase(candidateRepo, matchRepo, matchUC)

	candidate := &domain.Candidate{Name: "Dana Levi", ResumeText: "resume"}

	candidateRepo.On("Create", mock.Anything, candidate).Return(nil)
	matchUC.On("AutoMatchCandidate", mock.Anything, candidate).Return(0, errors.New("scorer unavailable"))

	err := uc.CreateCandidate(context.Background(), candidate)

	assert.NoError(t, err)
}

func TestCreateCandidate_ValidationError(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)
	matchUC := new(MockMatchUsecase)
	uc := newCandidateUsecase(candidateRepo, matchRepo, matchUC)

	err := uc.CreateCandidate(context.Background(), &domain.Candidate{Name: "X"})

	assert.Error(t, err)
	candidateRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateCandidate_PreservesOwnerAndAvatar(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)
	matchUC := new(MockMatchUsecase)
	uc := newCandidateUsecase(candidateRepo, matchRepo, matchUC)

	existing := &domain.Candidate{
		ID:          "c1",
		RecruiterID: "rec-1",
		Name:        "Dana Levi",
		ResumeText:  "resume",
		AvatarURL:   "https://cdn.example.com/avatars/c1.jpg",
	}
	candidateRepo.On("GetByID", mock.Anything, "c1").Return(existing, nil)
	candidateRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated := &domain.Candidate{ID: "c1", RecruiterID: "someone-else", Name: "Dana L.", ResumeText: "updated resume"}
	err := uc.UpdateCandidate(context.Background(), updated)

	assert.NoError(t, err)
	assert.Equal(t, "rec-1", updated.RecruiterID)
	assert.Equal(t, existing.AvatarURL, updated.AvatarURL)
}

func TestSetCandidateAvatar(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)
	matchUC := new(MockMatchUsecase)
	uc := newCandidateUsecase(candidateRepo, matchRepo, matchUC)

	candidateRepo.On("UpdateAvatarURL", mock.Anything, "c1", "https://cdn.example.com/avatars/c1.jpg").Return(nil)

	err := uc.SetCandidateAvatar(context.Background(), "c1", "https://cdn.example.com/avatars/c1.jpg")

	assert.NoError(t, err)
	candidateRepo.AssertExpectations(t)
}

func TestSetCandidateAvatar_NotFound(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)
	matchUC := new(MockMatchUsecase)
	uc := newCandidateUsecase(candidateRepo, matchRepo, matchUC)

	candidateRepo.On("UpdateAvatarURL", mock.Anything, "ghost", mock.Anything).Return(domain.ErrNotFound)

	err := uc.SetCandidateAvatar(context.Background(), "ghost", "https://cdn.example.com/x.jpg")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Candidate not found")
}

func TestDeleteCandidate_CascadesMatches(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	matchRepo := new(MockMatchRepo)
	matchUC := new(MockMatchUsecase)
	uc := newCandidateUsecase(candidateRepo, matchRepo, matchUC)

	candidateRepo.On("Delete", mock.Anything, "c1").Return(nil)
	matchRepo.On("DeleteByCandidateID", mock.Anything, "c1").Return(nil)

	err := uc.DeleteCandidate(context.Background(), "c1")

	assert.NoError(t, err)
	matchRepo.AssertExpectations(t)
}
