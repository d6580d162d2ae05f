package domain

import (
	"context"
	"time"
)

type QuestionnaireStatus string

const (
	QuestionnaireNotSent   QuestionnaireStatus = "NOT_SENT"
	QuestionnaireSent      QuestionnaireStatus = "SENT"
	QuestionnaireCompleted QuestionnaireStatus = "COMPLETED"
)

type Candidate struct {
	ID                  string              `json:"id"`
	RecruiterID         string              `json:"recruiter_id"`
	Name                string              `json:"name" validate:"required,min=2,max=120"`
	Title               string              `json:"title"`
	Department          string              `json:"department"`
	Field               string              `json:"field"`
	Experience          string              `json:"experience"`
	Skills              []string            `json:"skills"`
	ResumeText          string              `json:"resume_text" validate:"required"`
	Email               string              `json:"email" validate:"omitempty,email"`
	Phone               string              `json:"phone"`
	LinkedIn            string              `json:"linkedin"`
	AvatarURL           string              `json:"avatar_url"`
	ThemeColor          string              `json:"theme_color"`
	QuestionnaireStatus QuestionnaireStatus `json:"questionnaire_status"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Fetch(ctx context.Context) ([]Candidate, error)
	FetchByRecruiterID(ctx context.Context, recruiterID string) ([]Candidate, error)
	Update(ctx context.Context, candidate *Candidate) error
	UpdateAvatarURL(ctx context.Context, id, avatarURL string) error
	Delete(ctx context.Context, id string) error
	DeleteByRecruiterID(ctx context.Context, recruiterID string) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type CandidateUsecase interface {
	// CreateCandidate persists the candidate and runs the auto-match
	// sweep against every OPEN job before returning.
	CreateCandidate(ctx context.Context, candidate *Candidate) error
	// GenerateCandidate builds a structured profile from free resume
	// text via the AI profile extractor, then creates it.
	GenerateCandidate(ctx context.Context, recruiterID, resumeText string) (*Candidate, error)
	// RefineCandidate rewrites an existing profile following a free-text
	// instruction and saves the result.
	RefineCandidate(ctx context.Context, id, instruction string) (*Candidate, error)
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	ListCandidates(ctx context.Context) ([]Candidate, error)
	ListCandidatesByRecruiter(ctx context.Context, recruiterID string) ([]Candidate, error)
	UpdateCandidate(ctx context.Context, candidate *Candidate) error
	SetCandidateAvatar(ctx context.Context, id, avatarURL string) error
	// DeleteCandidate removes the candidate and cascades to its matches.
	DeleteCandidate(ctx context.Context, id string) error
}
