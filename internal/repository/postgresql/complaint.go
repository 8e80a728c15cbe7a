package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type complaintRepository struct {
	db *database.DB
}

func NewComplaintRepository(db *database.DB) attendance.ComplaintRepository {
	return &complaintRepository{db: db}
}

const complaintColumns = `
	id, user_id, company_id, to_char(date, 'YYYY-MM-DD'), action, time, reason, evidence,
	status, admin_note, reviewed_by, reviewed_at, created_at, updated_at`

func scanComplaint(row pgx.Row) (attendance.CheckinComplaint, error) {
	var c attendance.CheckinComplaint
	err := row.Scan(
		&c.ID, &c.UserID, &c.CompanyID, &c.Date, &c.Action, &c.Time, &c.Reason, &c.Evidence,
		&c.Status, &c.AdminNote, &c.ReviewedBy, &c.ReviewedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements attendance.ComplaintRepository.
func (r *complaintRepository) Create(ctx context.Context, c attendance.CheckinComplaint) (attendance.CheckinComplaint, error) {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO checkin_complaints (
			id, user_id, company_id, date, action, time, reason, evidence, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11)
	`,
		c.ID, c.UserID, c.CompanyID, c.Date, c.Action, c.Time, c.Reason, c.Evidence,
		c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return attendance.CheckinComplaint{}, fmt.Errorf("failed to create complaint: %w", err)
	}
	return c, nil
}

// GetByID implements attendance.ComplaintRepository.
func (r *complaintRepository) GetByID(ctx context.Context, id, companyID string) (attendance.CheckinComplaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + complaintColumns + ` FROM checkin_complaints WHERE id = $1 AND company_id = $2`
	c, err := scanComplaint(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.CheckinComplaint{}, attendance.ErrComplaintNotFound
		}
		return attendance.CheckinComplaint{}, fmt.Errorf("failed to get complaint: %w", err)
	}
	return c, nil
}

// ExistsPending implements attendance.ComplaintRepository.
func (r *complaintRepository) ExistsPending(ctx context.Context, userID, date string, action attendance.ComplaintAction, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM checkin_complaints
			WHERE user_id = $1 AND date = $2::date AND action = $3 AND company_id = $4 AND status = 'pending'
		)
	`, userID, date, action, companyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending complaint: %w", err)
	}
	return exists, nil
}

// UpdateReview implements attendance.ComplaintRepository.
func (r *complaintRepository) UpdateReview(ctx context.Context, c attendance.CheckinComplaint) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE checkin_complaints
		SET status = $1, admin_note = $2, reviewed_by = $3, reviewed_at = $4, updated_at = $5
		WHERE id = $6 AND company_id = $7 AND status = 'pending'
	`, c.Status, c.AdminNote, c.ReviewedBy, c.ReviewedAt, c.UpdatedAt, c.ID, c.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrComplaintAlreadyProcessed
	}
	return nil
}

// ListByUserBetween returns complaints in creation order so the newest approval wins downstream.
func (r *complaintRepository) ListByUserBetween(ctx context.Context, userID, from, to, companyID string) ([]attendance.CheckinComplaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + complaintColumns + `
		FROM checkin_complaints
		WHERE user_id = $1 AND company_id = $2 AND date BETWEEN $3::date AND $4::date
		ORDER BY created_at, id`

	rows, err := q.Query(ctx, query, userID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	var complaints []attendance.CheckinComplaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}
