package services

import (
	"testing"

	"backend/internal/domain"
)

func TestValidatePageRejectsBadLimits(t *testing.T) {
	cases := []PageRequest{
		{Page: 0, Limit: 10},
		{Page: -1, Limit: 10},
		{Page: 1, Limit: 0},
		{Page: 1, Limit: -5},
	}
	for _, p := range cases {
		err := validatePage(p)
		if err == nil {
			t.Fatalf("expected error for %+v", p)
		}
		if !domain.IsValidation(err) {
			t.Fatalf("expected ValidationError for %+v, got %v", p, err)
		}
	}
	if err := validatePage(PageRequest{Page: 1, Limit: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPageMetaCeiling(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		pages int64
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{15, 12, 2},
		{100, 50, 2},
		{101, 50, 3},
	}
	for _, tc := range cases {
		meta := pageMeta(PageRequest{Page: 1, Limit: tc.limit}, tc.total)
		if meta.Pages != tc.pages {
			t.Fatalf("pageMeta(total=%d, limit=%d).Pages = %d, want %d",
				tc.total, tc.limit, meta.Pages, tc.pages)
		}
		if meta.Total != tc.total || meta.PerPage != tc.limit {
			t.Fatalf("meta fields wrong: %+v", meta)
		}
	}
}

func TestPageRequestOffset(t *testing.T) {
	if got := (PageRequest{Page: 1, Limit: 12}).Offset(); got != 0 {
		t.Fatalf("page 1 offset = %d", got)
	}
	if got := (PageRequest{Page: 3, Limit: 12}).Offset(); got != 24 {
		t.Fatalf("page 3 offset = %d", got)
	}
}
