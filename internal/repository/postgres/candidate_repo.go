package postgres

import (
	"context"
	"errors"

	"go-talentmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, recruiter_id, name, title, department, field, experience, skills, resume_text, email, phone, linkedin, avatar_url, theme_color, questionnaire_status, created_at, updated_at`

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (` + candidateColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.RecruiterID, candidate.Name, candidate.Title, candidate.Department,
		candidate.Field, candidate.Experience, pq.Array(candidate.Skills), candidate.ResumeText,
		candidate.Email, candidate.Phone, candidate.LinkedIn, candidate.AvatarURL,
		candidate.ThemeColor, candidate.QuestionnaireStatus, candidate.CreatedAt, candidate.UpdatedAt,
	)
	return err
}

func scanCandidate(row pgx.Row, c *domain.Candidate) error {
	return row.Scan(
		&c.ID, &c.RecruiterID, &c.Name, &c.Title, &c.Department, &c.Field, &c.Experience,
		pq.Array(&c.Skills), &c.ResumeText, &c.Email, &c.Phone, &c.LinkedIn, &c.AvatarURL,
		&c.ThemeColor, &c.QuestionnaireStatus, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	var candidate domain.Candidate
	err := scanCandidate(r.db.QueryRow(ctx, query, id), &candidate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Candidate, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var candidate domain.Candidate
		if err := scanCandidate(rows, &candidate); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	return r.fetch(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY created_at DESC`)
}

func (r *candidateRepo) FetchByRecruiterID(ctx context.Context, recruiterID string) ([]domain.Candidate, error) {
	return r.fetch(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE recruiter_id = $1 ORDER BY created_at DESC`, recruiterID)
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `UPDATE candidates SET name = $2, title = $3, department = $4, field = $5,
              experience = $6, skills = $7, resume_text = $8, email = $9, phone = $10,
              linkedin = $11, theme_color = $12, questionnaire_status = $13, updated_at = $14
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.Name, candidate.Title, candidate.Department, candidate.Field,
		candidate.Experience, pq.Array(candidate.Skills), candidate.ResumeText, candidate.Email,
		candidate.Phone, candidate.LinkedIn, candidate.ThemeColor, candidate.QuestionnaireStatus,
		candidate.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateAvatarURL(ctx context.Context, id, avatarURL string) error {
	tag, err := r.db.Exec(ctx, `UPDATE candidates SET avatar_url = $2, updated_at = NOW() WHERE id = $1`, id, avatarURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	return err
}

func (r *candidateRepo) DeleteByRecruiterID(ctx context.Context, recruiterID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE recruiter_id = $1`, recruiterID)
	return err
}

func (r *candidateRepo) DeleteAll(ctx context.Context) (int64, error) {
	return deleteInBatches(ctx, r.db, `DELETE FROM candidates WHERE ctid IN
        (SELECT ctid FROM candidates LIMIT $1)`)
}

func (r *candidateRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total)
	return total, err
}
