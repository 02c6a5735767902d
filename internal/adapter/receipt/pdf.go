// Package receipt renders booking receipts as PDF documents.
package receipt

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"github.com/flight-search/booking-wizard/internal/domain"
)

// ContentTypePDF is the media type of rendered receipts.
const ContentTypePDF = "application/pdf"

// PDFRenderer implements domain.ReceiptRenderer with gofpdf.
type PDFRenderer struct{}

// Ensure PDFRenderer implements domain.ReceiptRenderer.
var _ domain.ReceiptRenderer = PDFRenderer{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() PDFRenderer {
	return PDFRenderer{}
}

// ContentType implements domain.ReceiptRenderer.
func (PDFRenderer) ContentType() string {
	return ContentTypePDF
}

// Render implements domain.ReceiptRenderer. The output is an A4 page.
func (PDFRenderer) Render(r domain.Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt "+r.PNR, true)
	pdf.SetCreator("booking-wizard", true)
	if !r.IssuedAt.IsZero() {
		pdf.SetCreationDate(r.IssuedAt)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"PNR          : " + safe(r.PNR, "-"),
		"Ticket No    : " + safe(r.TicketNo, "-"),
		"Booking ID   : " + safe(string(r.BookingID), "-"),
		"Trip         : " + strconv.FormatInt(r.TripID, 10),
	}
	if !r.IssuedAt.IsZero() {
		lines = append(lines, "Issued       : "+r.IssuedAt.Format("2006-01-02 15:04 MST"))
	}
	for _, s := range lines {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Flight")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	flight := []string{
		"Airline      : " + safe(r.Airline, "-"),
		fmt.Sprintf("Route        : %s - %s", safe(r.Origin, "?"), safe(r.Destination, "?")),
		fmt.Sprintf("Departure    : %s   Arrival: %s", safe(r.DepartureTime, "-"), safe(r.ArrivalTime, "-")),
		"Duration     : " + safe(r.Duration, "-"),
		"Stops        : " + safe(r.StopLabel, "-"),
	}
	for _, s := range flight {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, p := range r.Passengers {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%d) %s (%s)", i+1, safe(p.Name, "-"), p.TravelerType.Label())))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Total paid: "+safe(r.Price, "-")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Please present your PNR at check-in. This receipt is not a boarding pass.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generate receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func safe(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
