package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, company_id, to_char(date, 'YYYY-MM-DD'), check_in, check_out, total_hours,
	check_in_image, check_out_image, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.AttendanceLog, error) {
	var l attendance.AttendanceLog
	err := row.Scan(
		&l.ID, &l.UserID, &l.CompanyID, &l.Date, &l.CheckIn, &l.CheckOut, &l.TotalHours,
		&l.CheckInImage, &l.CheckOutImage, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID, date, companyID string) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance_logs
		WHERE user_id = $1 AND date = $2::date AND company_id = $3`

	l, err := scanAttendance(q.QueryRow(ctx, query, userID, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceLog{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceLog{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return l, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, log attendance.AttendanceLog) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_logs (
			id, user_id, company_id, date, check_in, check_out, total_hours,
			check_in_image, check_out_image, created_at, updated_at
		) VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		log.ID,
		log.UserID,
		log.CompanyID,
		log.Date,
		log.CheckIn,
		log.CheckOut,
		log.TotalHours,
		log.CheckInImage,
		log.CheckOutImage,
		log.CreatedAt,
		log.UpdatedAt,
	).Scan(&log.CreatedAt, &log.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.AttendanceLog{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceLog{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return log, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, log attendance.AttendanceLog) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance_logs
		SET check_in = $1, check_out = $2, total_hours = $3,
			check_in_image = $4, check_out_image = $5, updated_at = $6
		WHERE id = $7 AND company_id = $8
	`,
		log.CheckIn, log.CheckOut, log.TotalHours,
		log.CheckInImage, log.CheckOutImage, log.UpdatedAt,
		log.ID, log.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByUserBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserBetween(ctx context.Context, userID, from, to, companyID string) ([]attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance_logs
		WHERE user_id = $1 AND company_id = $2 AND date BETWEEN $3::date AND $4::date
		ORDER BY date`

	rows, err := q.Query(ctx, query, userID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var logs []attendance.AttendanceLog
	for rows.Next() {
		l, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
