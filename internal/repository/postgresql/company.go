package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, code, attendance_config, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var comp company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&comp.ID,
		&comp.Name,
		&comp.Code,
		&comp.AttendanceConfig,
		&comp.CreatedAt,
		&comp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company %s: %w", id, err)
	}
	return comp, nil
}

// UpdateAttendanceConfig implements company.CompanyRepository.
func (c *companyRepositoryImpl) UpdateAttendanceConfig(ctx context.Context, id string, cfg company.AttendanceConfig) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `
		UPDATE companies
		SET attendance_config = $1, updated_at = NOW()
		WHERE id = $2
	`, cfg, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance config of company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
