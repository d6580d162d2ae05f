package domain

import (
	"context"
	"sort"
	"time"
)

// Scoring thresholds. SaveThreshold gates persistence: pairs scoring
// below it are never written. DisplayThreshold and AuditThreshold only
// bucket already-persisted matches for presentation, and
// HighValueThreshold feeds the per-recruiter "active matches" stat.
const (
	SaveThreshold      = 50
	DisplayThreshold   = 60
	AuditThreshold     = 60
	HighValueThreshold = 80
)

// MatchAnalysis is the normalized verdict of the scoring oracle. A zero
// score doubles as the failure value: the gateway never surfaces oracle
// errors, it folds them into {0, <failure reasoning>}.
type MatchAnalysis struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// DualMatchAnalysis extends MatchAnalysis with pros/cons used by the
// ad-hoc comparison tools.
type DualMatchAnalysis struct {
	MatchAnalysis
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// MatchScorer is the oracle contract. Implementations must not return
// errors; any failure degrades to a zero-score analysis.
type MatchScorer interface {
	Score(ctx context.Context, jobText, resumeText string) MatchAnalysis
}

// MatchResult identity is the (JobID, CandidateID) pair; at most one
// live record exists per pair. JobRecruiterID and CandidateRecruiterID
// are ownership snapshots taken at write time from the two sides. They
// are not re-derived on read, so they go stale if an entity changes
// owner after the match was written.
type MatchResult struct {
	JobID                string    `json:"job_id"`
	CandidateID          string    `json:"candidate_id"`
	JobRecruiterID       string    `json:"job_recruiter_id"`
	CandidateRecruiterID string    `json:"candidate_recruiter_id"`
	Score                int       `json:"score"`
	Reasoning            string    `json:"reasoning"`
	IsActive             bool      `json:"is_active"`
	IsPlaced             bool      `json:"is_placed"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Key returns the deterministic composite identifier for the pair.
func (m MatchResult) Key() string {
	return m.JobID + "_" + m.CandidateID
}

// IsInternal reports whether job and candidate share an owning
// recruiter. Two empty owner snapshots compare equal and count as
// internal.
func (m MatchResult) IsInternal() bool {
	return m.JobRecruiterID == m.CandidateRecruiterID
}

// SortByScoreDesc orders matches by score descending in place. The sort
// is stable so equal scores keep their incoming order.
func SortByScoreDesc(matches []MatchResult) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}

// PartitionByScore splits matches into a high tier (score >= threshold)
// and a low tier (score < threshold).
func PartitionByScore(matches []MatchResult, threshold int) (high, low []MatchResult) {
	for _, m := range matches {
		if m.Score >= threshold {
			high = append(high, m)
		} else {
			low = append(low, m)
		}
	}
	return high, low
}

// FilterOrphans drops matches referencing a candidate id absent from
// the loaded set. Orphaned records stay in storage until the cleanup
// sweep removes them; they are invisible to every view and count.
func FilterOrphans(matches []MatchResult, candidateIDs map[string]bool) []MatchResult {
	valid := make([]MatchResult, 0, len(matches))
	for _, m := range matches {
		if candidateIDs[m.CandidateID] {
			valid = append(valid, m)
		}
	}
	return valid
}

// CountOwnership tallies internal vs external matches.
func CountOwnership(matches []MatchResult) (internal, external int64) {
	for _, m := range matches {
		if m.IsInternal() {
			internal++
		} else {
			external++
		}
	}
	return internal, external
}

// JobMatchView is the recruiter-facing matching screen: persisted
// matches for one job, orphan-filtered and bucketed at the display
// threshold. NewCandidates counts loaded candidates not yet covered by
// a persisted match.
type JobMatchView struct {
	JobID         string        `json:"job_id"`
	High          []MatchResult `json:"high"`
	Low           []MatchResult `json:"low"`
	NewCandidates int           `json:"new_candidates"`
}

type MatchRepository interface {
	// Upsert writes the match keyed by (JobID, CandidateID), replacing
	// any previous record for the pair.
	Upsert(ctx context.Context, match *MatchResult) error
	FetchByJobID(ctx context.Context, jobID string) ([]MatchResult, error)
	Fetch(ctx context.Context) ([]MatchResult, error)
	// ReplaceForJob deletes the job's current match set and inserts the
	// given one in a single transaction.
	ReplaceForJob(ctx context.Context, jobID string, matches []MatchResult) error
	MarkPlaced(ctx context.Context, jobID, candidateID string) error
	DeleteByJobID(ctx context.Context, jobID string) error
	DeleteByCandidateID(ctx context.Context, candidateID string) error
	DeleteByRecruiterID(ctx context.Context, recruiterID string) error
	DeleteBelowScore(ctx context.Context, threshold int) (int64, error)
	DeleteOrphaned(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountOwnershipSplit(ctx context.Context) (internal, external int64, err error)
}

type MatchUsecase interface {
	// AutoMatchJob scores the job against every existing candidate,
	// sequentially, persisting pairs at or above SaveThreshold. Returns
	// the number of matches written.
	AutoMatchJob(ctx context.Context, job *Job) (int, error)
	// AutoMatchCandidate scores the candidate against every OPEN job.
	AutoMatchCandidate(ctx context.Context, candidate *Candidate) (int, error)
	// RefreshJobMatches re-scores every current candidate against the
	// job and replaces the stored match set wholesale.
	RefreshJobMatches(ctx context.Context, jobID string) ([]MatchResult, error)
	GetJobMatchView(ctx context.Context, jobID string) (*JobMatchView, error)
	PurgeBelowThreshold(ctx context.Context) (int64, error)
	CleanupOrphaned(ctx context.Context) (int64, error)
}
