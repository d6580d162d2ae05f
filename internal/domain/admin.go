package domain

import "context"

// CloudStats is the data-management overview: one bulk read over the
// four collections, guarded by a single timeout.
type CloudStats struct {
	Users           int64 `json:"users"`
	Candidates      int64 `json:"candidates"`
	Jobs            int64 `json:"jobs"`
	InternalMatches int64 `json:"internal_matches"`
	ExternalMatches int64 `json:"external_matches"`
}

// AuditEntry is one row of the admin cross-recruiter table. Only
// matches scoring strictly above AuditThreshold with both sides still
// resolvable appear here.
type AuditEntry struct {
	Match                  MatchResult `json:"match"`
	JobTitle               string      `json:"job_title"`
	CandidateName          string      `json:"candidate_name"`
	JobRecruiterName       string      `json:"job_recruiter_name"`
	CandidateRecruiterName string      `json:"candidate_recruiter_name"`
	IsExternal             bool        `json:"is_external"`
}

// RecruiterStats is the per-recruiter profile card. ActiveMatches only
// counts matches above HighValueThreshold on either owned side.
type RecruiterStats struct {
	TotalJobs       int64 `json:"total_jobs"`
	TotalCandidates int64 `json:"total_candidates"`
	ActiveMatches   int64 `json:"active_matches"`
	FilledJobs      int64 `json:"filled_jobs"`
}

// RecruiterOverview is one row of the admin recruiter-management table.
type RecruiterOverview struct {
	User           User  `json:"user"`
	JobCount       int64 `json:"job_count"`
	CandidateCount int64 `json:"candidate_count"`
}

type AdminUsecase interface {
	GetCloudStats(ctx context.Context) (*CloudStats, error)
	GetCrossRecruiterAudit(ctx context.Context) ([]AuditEntry, error)
	GetRecruiterStats(ctx context.Context, recruiterID string) (*RecruiterStats, error)
	ListRecruiters(ctx context.Context) ([]RecruiterOverview, error)
	// DeleteRecruiter cascades: jobs, candidates, matches referencing
	// either owner snapshot, then the user itself.
	DeleteRecruiter(ctx context.Context, recruiterID string) error
	DeleteAllJobs(ctx context.Context) (int64, error)
	DeleteAllCandidates(ctx context.Context) (int64, error)
	DeleteAllMatches(ctx context.Context) (int64, error)
	DeleteAllRecruiters(ctx context.Context, keepUserID string) (int64, error)
	ExportAudit(ctx context.Context) ([]byte, string, error)
}
