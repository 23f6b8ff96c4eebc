package repositories

import (
	"context"
	"database/sql"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/utils"
)

type BookingRepository struct {
	DB *sql.DB
}

// Detail rows join the parent event and user so their names resolve in one
// round trip. LEFT JOIN plus NULL checks turn a dangling reference into an
// explicit error instead of dropping the row.
const bookingDetailQuery = `
	SELECT b.id, b.event_id, b.user_id, b.tickets, CAST(b.total_amount AS CHAR),
		b.status, b.booking_date, e.name, u.name, u.email
	FROM bookings b
	LEFT JOIN events e ON e.id = b.event_id
	LEFT JOIN users u ON u.id = b.user_id`

func (r BookingRepository) List(ctx context.Context, limit, offset int) ([]models.BookingDetail, int64, error) {
	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookings").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx,
		bookingDetailQuery+" ORDER BY b.id ASC LIMIT ? OFFSET ?", limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectBookingDetails(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r BookingRepository) GetDetail(ctx context.Context, id int64) (models.BookingDetail, error) {
	row := r.DB.QueryRowContext(ctx, bookingDetailQuery+" WHERE b.id = ? LIMIT 1", id)
	return scanBookingDetail(row)
}

// Recent returns the newest bookings by booking_date, id breaking ties so the
// order is stable.
func (r BookingRepository) Recent(ctx context.Context, limit int) ([]models.BookingDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		bookingDetailQuery+" ORDER BY b.booking_date DESC, b.id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookingDetails(rows)
}

func (r BookingRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookings").Scan(&n)
	return n, err
}

// SumRevenue totals total_amount across every booking, cancelled ones
// included.
func (r BookingRepository) SumRevenue(ctx context.Context) (int64, error) {
	var sum string
	err := r.DB.QueryRowContext(ctx,
		"SELECT CAST(COALESCE(SUM(total_amount), 0) AS CHAR) FROM bookings").Scan(&sum)
	if err != nil {
		return 0, err
	}
	return utils.ParseCents(sum)
}

// Create inserts a booking inside one transaction: the event row is locked,
// the seat balance checked and decremented, and the amount priced from the
// locked row, so concurrent bookings cannot oversell.
func (r BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var (
		available int
		price     string
	)
	err = tx.QueryRowContext(ctx,
		"SELECT available_seats, CAST(price AS CHAR) FROM events WHERE id = ? FOR UPDATE",
		b.EventID).Scan(&available, &price)
	if err == sql.ErrNoRows {
		return domain.NotFoundError{Resource: "event"}
	}
	if err != nil {
		return err
	}

	var userID int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM users WHERE id = ?", b.UserID).Scan(&userID)
	if err == sql.ErrNoRows {
		return domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return err
	}

	if b.Tickets > available {
		return domain.ConflictError{Resource: "booking", Msg: "not enough available seats"}
	}

	priceCents, err := utils.ParseCents(price)
	if err != nil {
		return err
	}
	b.AmountCents = priceCents * int64(b.Tickets)

	if _, err := tx.ExecContext(ctx,
		"UPDATE events SET available_seats = available_seats - ? WHERE id = ?",
		b.Tickets, b.EventID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO bookings (event_id, user_id, tickets, total_amount, status, booking_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.EventID, b.UserID, b.Tickets, utils.FormatCents(b.AmountCents),
		b.Status, b.BookingDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id

	return tx.Commit()
}

func collectBookingDetails(rows *sql.Rows) ([]models.BookingDetail, error) {
	out := []models.BookingDetail{}
	for rows.Next() {
		det, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, det)
	}
	return out, rows.Err()
}

func scanBookingDetail(row rowScanner) (models.BookingDetail, error) {
	var (
		det       models.BookingDetail
		amount    string
		eventName sql.NullString
		userName  sql.NullString
		userEmail sql.NullString
	)
	if err := row.Scan(&det.ID, &det.EventID, &det.UserID, &det.Tickets, &amount,
		&det.Status, &det.BookingDate, &eventName, &userName, &userEmail); err != nil {
		return models.BookingDetail{}, err
	}

	if !eventName.Valid {
		return models.BookingDetail{}, domain.ReferenceError{Resource: "event", RefID: det.EventID}
	}
	if !userName.Valid || !userEmail.Valid {
		return models.BookingDetail{}, domain.ReferenceError{Resource: "user", RefID: det.UserID}
	}

	cents, err := utils.ParseCents(amount)
	if err != nil {
		return models.BookingDetail{}, err
	}
	det.AmountCents = cents
	det.EventName = eventName.String
	det.CustomerName = userName.String
	det.CustomerEmail = userEmail.String
	return det, nil
}
