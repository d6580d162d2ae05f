package postgres

import (
	"context"

	"go-talentmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

const matchColumns = `job_id, candidate_id, job_recruiter_id, candidate_recruiter_id, score, reasoning, is_active, is_placed, updated_at`

const upsertMatchQuery = `INSERT INTO matches (` + matchColumns + `)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    ON CONFLICT (job_id, candidate_id) DO UPDATE SET
        job_recruiter_id = EXCLUDED.job_recruiter_id,
        candidate_recruiter_id = EXCLUDED.candidate_recruiter_id,
        score = EXCLUDED.score,
        reasoning = EXCLUDED.reasoning,
        is_active = EXCLUDED.is_active,
        is_placed = EXCLUDED.is_placed,
        updated_at = EXCLUDED.updated_at`

// Upsert writes the match keyed by its (job_id, candidate_id) pair. A
// second write for the same pair overwrites the first, which keeps the
// sweep loops idempotent without read-before-write.
func (r *matchRepo) Upsert(ctx context.Context, match *domain.MatchResult) error {
	_, err := r.db.Exec(ctx, upsertMatchQuery,
		match.JobID, match.CandidateID, match.JobRecruiterID, match.CandidateRecruiterID,
		match.Score, match.Reasoning, match.IsActive, match.IsPlaced, match.UpdatedAt,
	)
	return err
}

func scanMatch(row pgx.Row, m *domain.MatchResult) error {
	return row.Scan(
		&m.JobID, &m.CandidateID, &m.JobRecruiterID, &m.CandidateRecruiterID,
		&m.Score, &m.Reasoning, &m.IsActive, &m.IsPlaced, &m.UpdatedAt,
	)
}

func (r *matchRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.MatchResult, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.MatchResult
	for rows.Next() {
		var match domain.MatchResult
		if err := scanMatch(rows, &match); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func (r *matchRepo) FetchByJobID(ctx context.Context, jobID string) ([]domain.MatchResult, error) {
	return r.fetch(ctx, `SELECT `+matchColumns+` FROM matches WHERE job_id = $1 ORDER BY score DESC, candidate_id`, jobID)
}

func (r *matchRepo) Fetch(ctx context.Context) ([]domain.MatchResult, error) {
	return r.fetch(ctx, `SELECT `+matchColumns+` FROM matches ORDER BY score DESC, job_id, candidate_id`)
}

// ReplaceForJob swaps the job's whole match set in one transaction, so
// a refresh that drops a pair below the save threshold also removes its
// stale persisted record.
func (r *matchRepo) ReplaceForJob(ctx context.Context, jobID string, matches []domain.MatchResult) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM matches WHERE job_id = $1`, jobID); err != nil {
		return err
	}

	for _, match := range matches {
		if _, err := tx.Exec(ctx, upsertMatchQuery,
			match.JobID, match.CandidateID, match.JobRecruiterID, match.CandidateRecruiterID,
			match.Score, match.Reasoning, match.IsActive, match.IsPlaced, match.UpdatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *matchRepo) MarkPlaced(ctx context.Context, jobID, candidateID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE matches SET is_placed = TRUE, updated_at = NOW() WHERE job_id = $1 AND candidate_id = $2`,
		jobID, candidateID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *matchRepo) DeleteByJobID(ctx context.Context, jobID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM matches WHERE job_id = $1`, jobID)
	return err
}

func (r *matchRepo) DeleteByCandidateID(ctx context.Context, candidateID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM matches WHERE candidate_id = $1`, candidateID)
	return err
}

// DeleteByRecruiterID targets matches via the denormalized owner
// snapshots, which is what lets a recruiter cascade run without joining
// back to jobs and candidates.
func (r *matchRepo) DeleteByRecruiterID(ctx context.Context, recruiterID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM matches WHERE job_recruiter_id = $1 OR candidate_recruiter_id = $1`,
		recruiterID,
	)
	return err
}

func (r *matchRepo) DeleteBelowScore(ctx context.Context, threshold int) (int64, error) {
	return deleteInBatches(ctx, r.db, `DELETE FROM matches WHERE ctid IN
        (SELECT ctid FROM matches WHERE score < $2 LIMIT $1)`, threshold)
}

func (r *matchRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	return deleteInBatches(ctx, r.db, `DELETE FROM matches WHERE ctid IN
        (SELECT m.ctid FROM matches m
         WHERE NOT EXISTS (SELECT 1 FROM jobs j WHERE j.id = m.job_id)
            OR NOT EXISTS (SELECT 1 FROM candidates c WHERE c.id = m.candidate_id)
         LIMIT $1)`)
}

func (r *matchRepo) DeleteAll(ctx context.Context) (int64, error) {
	return deleteInBatches(ctx, r.db, `DELETE FROM matches WHERE ctid IN
        (SELECT ctid FROM matches LIMIT $1)`)
}

func (r *matchRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM matches`).Scan(&total)
	return total, err
}

func (r *matchRepo) CountOwnershipSplit(ctx context.Context) (internal, external int64, err error) {
	err = r.db.QueryRow(ctx, `SELECT
        COUNT(*) FILTER (WHERE job_recruiter_id = candidate_recruiter_id),
        COUNT(*) FILTER (WHERE job_recruiter_id <> candidate_recruiter_id)
        FROM matches`).Scan(&internal, &external)
	return internal, external, err
}
