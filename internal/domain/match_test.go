package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-talentmatch-backend/internal/domain"
)

func TestMatchResultKey(t *testing.T) {
	m := domain.MatchResult{JobID: "job1", CandidateID: "cand9"}
	assert.Equal(t, "job1_cand9", m.Key())
}

func TestIsInternal(t *testing.T) {
	t.Run("same recruiter on both sides is internal", func(t *testing.T) {
		m := domain.MatchResult{JobRecruiterID: "r1", CandidateRecruiterID: "r1"}
		assert.True(t, m.IsInternal())
	})

	t.Run("different recruiters is external", func(t *testing.T) {
		m := domain.MatchResult{JobRecruiterID: "r1", CandidateRecruiterID: "r2"}
		assert.False(t, m.IsInternal())
	})

	t.Run("two empty snapshots compare equal", func(t *testing.T) {
		m := domain.MatchResult{}
		assert.True(t, m.IsInternal())
	})
}

func TestSortByScoreDesc(t *testing.T) {
	matches := []domain.MatchResult{
		{CandidateID: "a", Score: 55},
		{CandidateID: "b", Score: 90},
		{CandidateID: "c", Score: 72},
		{CandidateID: "d", Score: 72},
	}

	domain.SortByScoreDesc(matches)

	assert.Equal(t, "b", matches[0].CandidateID)
	// stable: c entered before d at the same score
	assert.Equal(t, "c", matches[1].CandidateID)
	assert.Equal(t, "d", matches[2].CandidateID)
	assert.Equal(t, "a", matches[3].CandidateID)
}

func TestPartitionByScore(t *testing.T) {
	matches := []domain.MatchResult{
		{CandidateID: "low", Score: 59},
		{CandidateID: "boundary", Score: 60},
		{CandidateID: "high", Score: 95},
	}

	high, low := domain.PartitionByScore(matches, domain.DisplayThreshold)

	assert.Len(t, high, 2)
	assert.Len(t, low, 1)
	// a score exactly at the threshold lands in the high tier
	assert.Equal(t, "boundary", high[0].CandidateID)
	assert.Equal(t, "low", low[0].CandidateID)
}

func TestFilterOrphans(t *testing.T) {
	matches := []domain.MatchResult{
		{CandidateID: "alive"},
		{CandidateID: "deleted"},
	}
	known := map[string]bool{"alive": true}

	valid := domain.FilterOrphans(matches, known)

	assert.Len(t, valid, 1)
	assert.Equal(t, "alive", valid[0].CandidateID)
}

func TestCountOwnership(t *testing.T) {
	matches := []domain.MatchResult{
		{JobRecruiterID: "r1", CandidateRecruiterID: "r1"},
		{JobRecruiterID: "r1", CandidateRecruiterID: "r2"},
		{JobRecruiterID: "", CandidateRecruiterID: ""},
	}

	internal, external := domain.CountOwnership(matches)

	assert.Equal(t, int64(2), internal)
	assert.Equal(t, int64(1), external)
}
