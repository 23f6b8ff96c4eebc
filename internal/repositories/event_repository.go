package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"backend/internal/domain/models"
	"backend/internal/utils"
)

// CategoryAll is the sentinel filter value meaning "no category filter".
const CategoryAll = "all"

type EventRepository struct {
	DB *sql.DB
}

// EventFilter narrows the event listing. Zero values mean no filtering.
type EventFilter struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}

const eventColumns = `id, name, category, COALESCE(description,''), venue, date,
	total_seats, available_seats, CAST(price AS CHAR), thumbnail, status, created_at`

func (r EventRepository) List(ctx context.Context, f EventFilter) ([]models.Event, int64, error) {
	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(f.Search); s != "" {
		// LIKE BINARY keeps substring matching case-sensitive regardless of
		// the column collation.
		where = append(where, "name LIKE BINARY ?")
		args = append(args, "%"+s+"%")
	}
	// Exact-match sentinel: clients send "all" (or nothing) for an unfiltered
	// list, so a stored category literally named "All" stays filterable.
	if c := strings.TrimSpace(f.Category); c != "" && c != CategoryAll {
		where = append(where, "category = ?")
		args = append(args, c)
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM events WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE "+cond+" ORDER BY id ASC LIMIT ? OFFSET ?",
		append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, ev)
	}
	return out, total, rows.Err()
}

func (r EventRepository) GetByID(ctx context.Context, id int64) (models.Event, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id = ? LIMIT 1", id)
	return scanEvent(row)
}

func (r EventRepository) Create(ctx context.Context, ev *models.Event) error {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO events (name, category, description, venue, date,
			total_seats, available_seats, price, thumbnail, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Name, ev.Category, ev.Description, ev.Venue, ev.Date,
		ev.TotalSeats, ev.AvailableSeats, utils.FormatCents(ev.PriceCents),
		nullableStringPtr(ev.Thumbnail), ev.Status, ev.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ev.ID = id
	return nil
}

// Update writes the full row; partial-update merging happens in the service.
func (r EventRepository) Update(ctx context.Context, ev models.Event) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE events
		SET name=?, category=?, description=?, venue=?, date=?,
			total_seats=?, available_seats=?, price=?, thumbnail=?, status=?
		WHERE id=?`,
		ev.Name, ev.Category, ev.Description, ev.Venue, ev.Date,
		ev.TotalSeats, ev.AvailableSeats, utils.FormatCents(ev.PriceCents),
		nullableStringPtr(ev.Thumbnail), ev.Status, ev.ID)
	return err
}

// Delete removes the event; bookings go with it via the FK cascade.
func (r EventRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r EventRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT DISTINCT category FROM events WHERE category <> '' ORDER BY category ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r EventRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}

// Upcoming returns events strictly after now, soonest first.
func (r EventRepository) Upcoming(ctx context.Context, now time.Time, limit int) ([]models.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE date > ? ORDER BY date ASC LIMIT ?",
		now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		ev        models.Event
		price     string
		thumbnail sql.NullString
	)
	if err := row.Scan(&ev.ID, &ev.Name, &ev.Category, &ev.Description, &ev.Venue,
		&ev.Date, &ev.TotalSeats, &ev.AvailableSeats, &price, &thumbnail,
		&ev.Status, &ev.CreatedAt); err != nil {
		return models.Event{}, err
	}
	cents, err := utils.ParseCents(price)
	if err != nil {
		return models.Event{}, err
	}
	ev.PriceCents = cents
	if thumbnail.Valid {
		ev.Thumbnail = &thumbnail.String
	}
	return ev, nil
}

func nullableStringPtr(s *string) any {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return *s
}
