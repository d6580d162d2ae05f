package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type JobStatus string

const (
	JobStatusOpen     JobStatus = "OPEN"
	JobStatusFilled   JobStatus = "FILLED"
	JobStatusArchived JobStatus = "ARCHIVED"
)

type Job struct {
	ID               string    `json:"id"`
	RecruiterID      string    `json:"recruiter_id"`
	Title            string    `json:"title" validate:"required,min=2,max=200"`
	Department       string    `json:"department"`
	Location         string    `json:"location"`
	Description      string    `json:"description" validate:"required"`
	FullAdText       string    `json:"full_ad_text"`
	Requirements     []string  `json:"requirements"`
	ThemeColor       string    `json:"theme_color"`
	Status           JobStatus `json:"status"`
	HiredCandidateID *string   `json:"hired_candidate_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Fetch(ctx context.Context) ([]Job, error)
	FetchByStatus(ctx context.Context, status JobStatus) ([]Job, error)
	FetchByRecruiterID(ctx context.Context, recruiterID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	UpdateStatus(ctx context.Context, id string, status JobStatus, hiredCandidateID *string) error
	Delete(ctx context.Context, id string) error
	DeleteByRecruiterID(ctx context.Context, recruiterID string) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type JobUsecase interface {
	// CreateJob persists the job and runs the auto-match sweep against
	// every existing candidate before returning.
	CreateJob(ctx context.Context, job *Job) error
	GetJobDetails(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	ListJobsByRecruiter(ctx context.Context, recruiterID string) ([]Job, error)
	UpdateJob(ctx context.Context, job *Job) error
	ToggleJobStatus(ctx context.Context, id string) (*Job, error)
	MarkJobAsFilled(ctx context.Context, jobID, candidateID string) error
	// DeleteJob removes the job and cascades to its matches.
	DeleteJob(ctx context.Context, id string) error
}
