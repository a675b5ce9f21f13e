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

type ResultsRepo struct {
	pool *pgxpool.Pool
}

func NewResultsRepo(pool *pgxpool.Pool) *ResultsRepo {
	return &ResultsRepo{pool: pool}
}

func (r *ResultsRepo) Save(ctx context.Context, res *domain.EnhancedResult) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO enhanced_results (id, email, resume_filename, job_description, enhanced_resume, cover_letter)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		res.ID, res.Email, res.ResumeFilename, res.JobDescription, res.EnhancedResume, res.CoverLetter)
	if err != nil {
		return fmt.Errorf("insert enhanced result: %w", err)
	}
	return nil
}

// ListByEmail returns the caller's enhancement history, newest first.
func (r *ResultsRepo) ListByEmail(ctx context.Context, email string) ([]domain.EnhancedResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, resume_filename, job_description, enhanced_resume, cover_letter, created_at
		 FROM enhanced_results WHERE email=$1 ORDER BY created_at DESC`,
		email)
	if err != nil {
		return nil, fmt.Errorf("list enhanced results: %w", err)
	}
	defer rows.Close()

	var out []domain.EnhancedResult
	for rows.Next() {
		var res domain.EnhancedResult
		if err := rows.Scan(&res.ID, &res.Email, &res.ResumeFilename, &res.JobDescription,
			&res.EnhancedResume, &res.CoverLetter, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan enhanced result: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Get returns one result owned by email, or common.ErrNotFound.
func (r *ResultsRepo) Get(ctx context.Context, email string, id uuid.UUID) (*domain.EnhancedResult, error) {
	var res domain.EnhancedResult
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, resume_filename, job_description, enhanced_resume, cover_letter, created_at
		 FROM enhanced_results WHERE email=$1 AND id=$2`,
		email, id).Scan(&res.ID, &res.Email, &res.ResumeFilename, &res.JobDescription,
		&res.EnhancedResume, &res.CoverLetter, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("select enhanced result: %w", err)
	}
	return &res, nil
}
