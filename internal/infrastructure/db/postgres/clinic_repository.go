package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clinichub/clinic-registry/internal/core/domain"
)

// ClinicRepository is the PostgreSQL implementation of ports.ClinicRepository.
type ClinicRepository struct {
	db *sql.DB
}

func NewClinicRepository(db *sql.DB) *ClinicRepository {
	return &ClinicRepository{db: db}
}

func (r *ClinicRepository) Create(ctx context.Context, clinic *domain.Clinic) (*domain.Clinic, error) {
	const query = `INSERT INTO clinics (name) VALUES ($1) RETURNING id`

	created := &domain.Clinic{Name: clinic.Name}
	if err := r.db.QueryRowContext(ctx, query, clinic.Name).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("insert clinic: %w", err)
	}
	return created, nil
}

func (r *ClinicRepository) FindByID(ctx context.Context, id int64) (*domain.Clinic, error) {
	const query = `SELECT id, name FROM clinics WHERE id = $1`

	clinic := &domain.Clinic{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&clinic.ID, &clinic.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClinicNotFound
		}
		return nil, fmt.Errorf("find clinic: %w", err)
	}
	return clinic, nil
}

func (r *ClinicRepository) FindAll(ctx context.Context) ([]*domain.Clinic, error) {
	const query = `SELECT id, name FROM clinics ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	defer rows.Close()

	var clinics []*domain.Clinic
	for rows.Next() {
		clinic := &domain.Clinic{}
		if err := rows.Scan(&clinic.ID, &clinic.Name); err != nil {
			return nil, fmt.Errorf("scan clinic: %w", err)
		}
		clinics = append(clinics, clinic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	return clinics, nil
}

func (r *ClinicRepository) Update(ctx context.Context, clinic *domain.Clinic) (*domain.Clinic, error) {
	const query = `UPDATE clinics SET name = $2 WHERE id = $1 RETURNING id, name`

	updated := &domain.Clinic{}
	err := r.db.QueryRowContext(ctx, query, clinic.ID, clinic.Name).Scan(&updated.ID, &updated.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClinicNotFound
		}
		return nil, fmt.Errorf("update clinic: %w", err)
	}
	return updated, nil
}

// Delete removes the row unconditionally; a missing id is not an error.
func (r *ClinicRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM clinics WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete clinic: %w", err)
	}
	return nil
}
