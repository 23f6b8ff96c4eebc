package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking receipts as PDF. Loader overrides the
// repository lookup in tests.
type DocsService struct {
	Bookings  repositories.BookingRepository
	RequestID string
	Loader    func(context.Context, int64) (models.BookingDetail, error)
}

func (s DocsService) BookingReceipt(ctx context.Context, bookingID int64) ([]byte, string, error) {
	det, err := s.loadDetail(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "booking_receipt", fmt.Sprintf("booking_id=%d", bookingID))
	return buildReceiptPDF(det)
}

func (s DocsService) loadDetail(ctx context.Context, bookingID int64) (models.BookingDetail, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID)
	}
	det, err := s.Bookings.GetDetail(ctx, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BookingDetail{}, domain.NotFoundError{Resource: "booking"}
	}
	return det, err
}

func buildReceiptPDF(d models.BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No    : RCP-%d", d.ID),
		fmt.Sprintf("Booking Date  : %s", utils.FormatAPITime(d.BookingDate)),
		fmt.Sprintf("Event         : %s", d.EventName),
		fmt.Sprintf("Customer      : %s", d.CustomerName),
		fmt.Sprintf("Email         : %s", d.CustomerEmail),
		fmt.Sprintf("Tickets       : %d", d.Tickets),
		fmt.Sprintf("Total Amount  : %s", utils.FormatCents(d.AmountCents)),
		fmt.Sprintf("Status        : %s", d.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt covers one booking. Keep it for admission and refund handling.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d.pdf", d.ID)
	return buf.Bytes(), filename, nil
}
