package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-talentmatch-backend/internal/domain"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Fetch(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) DeleteAllExcept(ctx context.Context, keepID string) (int64, error) {
	args := m.Called(ctx, keepID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchByStatus(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchByRecruiterID(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) UpdateStatus(ctx context.Context, id string, status domain.JobStatus, hiredCandidateID *string) error {
	return m.Called(ctx, id, status, hiredCandidateID).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) DeleteByRecruiterID(ctx context.Context, recruiterID string) error {
	return m.Called(ctx, recruiterID).Error(0)
}
func (m *MockJobRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJobRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) FetchByRecruiterID(ctx context.Context, recruiterID string) ([]domain.Candidate, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}
func (m *MockCandidateRepo) UpdateAvatarURL(ctx context.Context, id, avatarURL string) error {
	return m.Called(ctx, id, avatarURL).Error(0)
}
func (m *MockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCandidateRepo) DeleteByRecruiterID(ctx context.Context, recruiterID string) error {
	return m.Called(ctx, recruiterID).Error(0)
}
func (m *MockCandidateRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCandidateRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) Upsert(ctx context.Context, match *domain.MatchResult) error {
	return m.Called(ctx, match).Error(0)
}
func (m *MockMatchRepo) FetchByJobID(ctx context.Context, jobID string) ([]domain.MatchResult, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchResult), args.Error(1)
}
func (m *MockMatchRepo) Fetch(ctx context.Context) ([]domain.MatchResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchResult), args.Error(1)
}
func (m *MockMatchRepo) ReplaceForJob(ctx context.Context, jobID string, matches []domain.MatchResult) error {
	return m.Called(ctx, jobID, matches).Error(0)
}
func (m *MockMatchRepo) MarkPlaced(ctx context.Context, jobID, candidateID string) error {
	return m.Called(ctx, jobID, candidateID).Error(0)
}
func (m *MockMatchRepo) DeleteByJobID(ctx context.Context, jobID string) error {
	return m.Called(ctx, jobID).Error(0)
}
func (m *MockMatchRepo) DeleteByCandidateID(ctx context.Context, candidateID string) error {
	return m.Called(ctx, candidateID).Error(0)
}
func (m *MockMatchRepo) DeleteByRecruiterID(ctx context.Context, recruiterID string) error {
	return m.Called(ctx, recruiterID).Error(0)
}
func (m *MockMatchRepo) DeleteBelowScore(ctx context.Context, threshold int) (int64, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMatchRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMatchRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMatchRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMatchRepo) CountOwnershipSplit(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// stubScorer returns a fixed score per resume text, mirroring the
// never-error contract of the oracle gateway.
type stubScorer struct {
	scores map[string]int
}

func (s *stubScorer) Score(ctx context.Context, jobText, resumeText string) domain.MatchAnalysis {
	score, ok := s.scores[resumeText]
	if !ok {
		return domain.MatchAnalysis{Score: 0, Reasoning: "no verdict"}
	}
	return domain.MatchAnalysis{Score: score, Reasoning: "stubbed"}
}
