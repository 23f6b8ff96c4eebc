package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"backend/internal/domain/models"
)

var eventCols = []string{
	"id", "name", "category", "description", "venue", "date",
	"total_seats", "available_seats", "price", "thumbnail", "status", "created_at",
}

func TestEventListAppliesFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	date := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM events WHERE 1=1 AND name LIKE BINARY \\? AND category = \\?").
		WithArgs("%Rock%", "Music").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT .+ FROM events WHERE 1=1 AND name LIKE BINARY \\? AND category = \\? ORDER BY id ASC LIMIT \\? OFFSET \\?").
		WithArgs("%Rock%", "Music", 12, 12).
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow(3, "Rock Night", "Music", "", "Hall A", date, 100, 80, "50.00", nil, "Active", date))

	repo := EventRepository{DB: db}
	events, total, err := repo.List(context.Background(), EventFilter{
		Search:   "Rock",
		Category: "Music",
		Limit:    12,
		Offset:   12,
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || len(events) != 1 {
		t.Fatalf("total=%d len=%d, want 1/1", total, len(events))
	}
	if events[0].PriceCents != 5000 {
		t.Fatalf("PriceCents = %d, want 5000", events[0].PriceCents)
	}
	if events[0].Thumbnail != nil {
		t.Fatalf("Thumbnail = %v, want nil", *events[0].Thumbnail)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestEventListSkipsAllCategorySentinel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM events WHERE 1=1$").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT .+ FROM events WHERE 1=1 ORDER BY id ASC LIMIT \\? OFFSET \\?").
		WithArgs(12, 0).
		WillReturnRows(sqlmock.NewRows(eventCols))

	repo := EventRepository{DB: db}
	events, total, err := repo.List(context.Background(), EventFilter{Category: "all", Limit: 12})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 0 || len(events) != 0 {
		t.Fatalf("total=%d len=%d, want 0/0", total, len(events))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestEventListCategoryNamedAllStillFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM events WHERE 1=1 AND category = \\?").
		WithArgs("All").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT .+ FROM events WHERE 1=1 AND category = \\? ORDER BY id ASC LIMIT \\? OFFSET \\?").
		WithArgs("All", 12, 0).
		WillReturnRows(sqlmock.NewRows(eventCols))

	repo := EventRepository{DB: db}
	if _, _, err := repo.List(context.Background(), EventFilter{Category: "All", Limit: 12}); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestEventCreateStoresFormattedPriceAndNilThumbnail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	date := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO events").
		WithArgs("Rock Night", "Music", "", "Hall A", date, 100, 100, "19.99", nil, "Active", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	repo := EventRepository{DB: db}
	ev := eventFixture(date)
	if err := repo.Create(context.Background(), &ev); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if ev.ID != 42 {
		t.Fatalf("ID = %d, want 42", ev.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestEventDeleteReportsRowsAffected(t *testing.T) {
	cases := []struct {
		name string
		id   int64
		rows int64
	}{
		{"existing row", 9, 1},
		{"absent row", 9, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock: %v", err)
			}
			defer db.Close()

			mock.ExpectExec("DELETE FROM events WHERE id = \\?").
				WithArgs(tc.id).
				WillReturnResult(sqlmock.NewResult(0, tc.rows))

			repo := EventRepository{DB: db}
			rows, err := repo.Delete(context.Background(), tc.id)
			if err != nil {
				t.Fatalf("Delete error: %v", err)
			}
			if rows != tc.rows {
				t.Fatalf("rows = %d, want %d", rows, tc.rows)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestNullableStringPtr(t *testing.T) {
	if got := nullableStringPtr(nil); got != nil {
		t.Fatalf("nil pointer: got %v", got)
	}
	blank := "   "
	if got := nullableStringPtr(&blank); got != nil {
		t.Fatalf("blank string: got %v", got)
	}
	url := "/images/a.png"
	if got := nullableStringPtr(&url); got != url {
		t.Fatalf("value string: got %v", got)
	}
}

func eventFixture(date time.Time) models.Event {
	return models.Event{
		Name:           "Rock Night",
		Category:       "Music",
		Venue:          "Hall A",
		Date:           date,
		TotalSeats:     100,
		AvailableSeats: 100,
		PriceCents:     1999,
		Status:         "Active",
		CreatedAt:      date,
	}
}
