package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrsaas/timesheet-backend/internal/domain/overtime"
	"github.com/hrsaas/timesheet-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	id, user_id, company_id, to_char(date, 'YYYY-MM-DD'), start_time, hours, reason,
	status, admin_note, approved_by, approved_at, created_at, updated_at`

func scanOvertime(row pgx.Row) (overtime.OvertimeLog, error) {
	var o overtime.OvertimeLog
	err := row.Scan(
		&o.ID, &o.UserID, &o.CompanyID, &o.Date, &o.StartTime, &o.Hours, &o.Reason,
		&o.Status, &o.AdminNote, &o.ApprovedBy, &o.ApprovedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *overtimeRepository) list(ctx context.Context, query string, args ...interface{}) ([]overtime.OvertimeLog, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime: %w", err)
	}
	defer rows.Close()

	var logs []overtime.OvertimeLog
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime: %w", err)
		}
		logs = append(logs, o)
	}
	return logs, rows.Err()
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, log overtime.OvertimeLog) (overtime.OvertimeLog, error) {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO overtime_logs (
			id, user_id, company_id, date, start_time, hours, reason, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10)
	`,
		log.ID, log.UserID, log.CompanyID, log.Date, log.StartTime, log.Hours, log.Reason,
		log.Status, log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		return overtime.OvertimeLog{}, fmt.Errorf("failed to create overtime: %w", err)
	}
	return log, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByID(ctx context.Context, id, companyID string) (overtime.OvertimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_logs WHERE id = $1 AND company_id = $2`
	o, err := scanOvertime(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeLog{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeLog{}, fmt.Errorf("failed to get overtime: %w", err)
	}
	return o, nil
}

// ExistsActiveOnDate implements overtime.OvertimeRepository.
func (r *overtimeRepository) ExistsActiveOnDate(ctx context.Context, userID, date, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM overtime_logs
			WHERE user_id = $1 AND date = $2::date AND company_id = $3 AND status IN ('pending', 'approved')
		)
	`, userID, date, companyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overtime: %w", err)
	}
	return exists, nil
}

// ListByUserID implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByUserID(ctx context.Context, userID, companyID string) ([]overtime.OvertimeLog, error) {
	return r.list(ctx, `SELECT `+overtimeColumns+`
		FROM overtime_logs
		WHERE user_id = $1 AND company_id = $2
		ORDER BY date DESC, created_at DESC`, userID, companyID)
}

// ListApprovedBetween implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListApprovedBetween(ctx context.Context, userID, from, to, companyID string) ([]overtime.OvertimeLog, error) {
	return r.list(ctx, `SELECT `+overtimeColumns+`
		FROM overtime_logs
		WHERE user_id = $1 AND company_id = $2 AND status = 'approved'
		  AND date BETWEEN $3::date AND $4::date
		ORDER BY date, created_at`, userID, companyID, from, to)
}

// UpdateStatus implements overtime.OvertimeRepository.
func (r *overtimeRepository) UpdateStatus(ctx context.Context, log overtime.OvertimeLog) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE overtime_logs
		SET status = $1, admin_note = $2, approved_by = $3, approved_at = $4, updated_at = $5
		WHERE id = $6 AND company_id = $7 AND status = 'pending'
	`, log.Status, log.AdminNote, log.ApprovedBy, log.ApprovedAt, log.UpdatedAt, log.ID, log.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update overtime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeAlreadyProcessed
	}
	return nil
}
