package repository

import (
	"context"
	"errors"
	"fmt"

	"resume-enhancer/internal/common"
	"resume-enhancer/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

func (r *ResumesRepo) Add(ctx context.Context, rec *domain.ResumeRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO resumes (id, email, filename, original_name) VALUES ($1,$2,$3,$4)`,
		rec.ID, rec.Email, rec.Filename, rec.OriginalName)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

// ListByEmail returns the caller's uploads in insertion order.
func (r *ResumesRepo) ListByEmail(ctx context.Context, email string) ([]domain.ResumeRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, filename, original_name, created_at FROM resumes WHERE email=$1 ORDER BY created_at`,
		email)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var out []domain.ResumeRecord
	for rows.Next() {
		var rec domain.ResumeRecord
		if err := rows.Scan(&rec.ID, &rec.Email, &rec.Filename, &rec.OriginalName, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Find returns the record for (email, filename), or common.ErrNotFound. The
// email match doubles as the ownership check.
func (r *ResumesRepo) Find(ctx context.Context, email, filename string) (*domain.ResumeRecord, error) {
	var rec domain.ResumeRecord
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, filename, original_name, created_at FROM resumes WHERE email=$1 AND filename=$2`,
		email, filename).Scan(&rec.ID, &rec.Email, &rec.Filename, &rec.OriginalName, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("select resume: %w", err)
	}
	return &rec, nil
}

// Remove deletes the record for (email, filename). Returns common.ErrNotFound
// when no row matched.
func (r *ResumesRepo) Remove(ctx context.Context, email, filename string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM resumes WHERE email=$1 AND filename=$2`, email, filename)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
