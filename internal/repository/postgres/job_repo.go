package postgres

import (
	"context"
	"errors"

	"go-talentmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, recruiter_id, title, department, location, description, full_ad_text, requirements, theme_color, status, hired_candidate_id, created_at, updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (` + jobColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.RecruiterID, job.Title, job.Department, job.Location, job.Description,
		job.FullAdText, pq.Array(job.Requirements), job.ThemeColor, job.Status,
		job.HiredCandidateID, job.CreatedAt, job.UpdatedAt,
	)
	return err
}

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID, &job.RecruiterID, &job.Title, &job.Department, &job.Location, &job.Description,
		&job.FullAdText, pq.Array(&job.Requirements), &job.ThemeColor, &job.Status,
		&job.HiredCandidateID, &job.CreatedAt, &job.UpdatedAt,
	)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var job domain.Job
	err := scanJob(r.db.QueryRow(ctx, query, id), &job)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	return r.fetch(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
}

func (r *jobRepo) FetchByStatus(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	return r.fetch(ctx, `SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (r *jobRepo) FetchByRecruiterID(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	return r.fetch(ctx, `SELECT `+jobColumns+` FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC`, recruiterID)
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, department = $3, location = $4, description = $5,
              full_ad_text = $6, requirements = $7, theme_color = $8, status = $9, updated_at = $10
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Department, job.Location, job.Description,
		job.FullAdText, pq.Array(job.Requirements), job.ThemeColor, job.Status, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id string, status domain.JobStatus, hiredCandidateID *string) error {
	query := `UPDATE jobs SET status = $2, hired_candidate_id = $3, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, status, hiredCandidateID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}

func (r *jobRepo) DeleteByRecruiterID(ctx context.Context, recruiterID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE recruiter_id = $1`, recruiterID)
	return err
}

func (r *jobRepo) DeleteAll(ctx context.Context) (int64, error) {
	return deleteInBatches(ctx, r.db, `DELETE FROM jobs WHERE ctid IN
        (SELECT ctid FROM jobs LIMIT $1)`)
}

func (r *jobRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total)
	return total, err
}
