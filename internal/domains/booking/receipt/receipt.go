// Package receipt renders booking receipts as PDF and publishes them to blob
// storage.
package receipt

//go:generate go run go.uber.org/mock/mockgen -source=./receipt.go -destination=../mocks/receipt_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/phpdave11/gofpdf"

	"maludy/config"
	"maludy/infras/otel"
	"maludy/infras/s3"
	"maludy/shared/constant"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9-_]+`)

type Guests struct {
	Seniors  int
	Adults   int
	Youths   int
	Children int
	Babies   int
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

// Data is everything the rendered receipt displays.
type Data struct {
	ReservationNo  string
	ActivityName   string
	Date           string
	Schedule       string
	PickupLocation string
	PaymentMethod  string
	TotalPrice     int
	Guests         Guests
	Customer       Customer
}

type Renderer interface {
	Render(ctx context.Context, data Data) (url string, err error)
}

type rendererImpl struct {
	cfg  *config.Config
	s3   s3.S3
	otel otel.Otel
}

func New(cfg *config.Config, s3 s3.S3, otel otel.Otel) Renderer {
	return &rendererImpl{
		cfg:  cfg,
		s3:   s3,
		otel: otel,
	}
}

// Render builds the receipt PDF and uploads it under the receipts directory,
// named after the reservation code.
func (r *rendererImpl) Render(ctx context.Context, data Data) (url string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelPDFScopeName, constant.OtelPDFScopeName+".Render")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("reservation_no", data.ReservationNo)

	pdfBytes, err := r.build(data)
	if err != nil {
		return constant.Empty, err
	}

	safeNo := unsafeFileChars.ReplaceAllString(data.ReservationNo, "_")
	fileName := safeNo + ".pdf"

	url, err = r.s3.UploadFileBytes(
		ctx,
		r.cfg.External.S3.BucketName,
		r.cfg.External.S3.ReceiptDir,
		fileName,
		constant.ContentTypePDF,
		pdfBytes,
	)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload receipt: %w", err)
	}

	return url, nil
}

// build renders the PDF document in memory.
func (r *rendererImpl) build(data Data) ([]byte, error) {
	agency := r.cfg.Agency

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, agency.Name)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%s | %s | %s", agency.Email, agency.Phone, agency.Web))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Booking Receipt #%s", data.ReservationNo))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)

	lines := []string{
		fmt.Sprintf("Activity:        %s", data.ActivityName),
		fmt.Sprintf("Date:            %s", data.Date),
		fmt.Sprintf("Schedule:        %s", data.Schedule),
		fmt.Sprintf("Pickup location: %s", data.PickupLocation),
		fmt.Sprintf("Payment method:  %s", data.PaymentMethod),
	}

	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guests")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)

	guestLines := []struct {
		label string
		count int
	}{
		{"Seniors", data.Guests.Seniors},
		{"Adults", data.Guests.Adults},
		{"Youths", data.Guests.Youths},
		{"Children", data.Guests.Children},
		{"Babies", data.Guests.Babies},
	}

	for _, guest := range guestLines {
		if guest.count == 0 {
			continue
		}

		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", guest.label, guest.count))
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Total: $%d", data.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Customer")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, data.Customer.Name)
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("%s | %s", data.Customer.Email, data.Customer.Phone))
	pdf.Ln(7)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}

	return buf.Bytes(), nil
}
