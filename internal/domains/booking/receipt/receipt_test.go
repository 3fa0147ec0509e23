package receipt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"maludy/config"
	"maludy/infras/otel/mocks"
	s3Mocks "maludy/infras/s3/mocks"
	"maludy/internal/domains/booking/receipt"
)

func testData() receipt.Data {
	return receipt.Data{
		ReservationNo:  "MT-ABCD2345",
		ActivityName:   "Saona Island Tour",
		Date:           "2026-09-15",
		Schedule:       "07:30",
		PickupLocation: "Hotel Lobby",
		PaymentMethod:  "CASH",
		TotalPrice:     120,
		Guests:         receipt.Guests{Adults: 1, Children: 2},
		Customer:       receipt.Customer{Name: "Ana Pérez", Email: "ana@example.com", Phone: "+18095551234"},
	}
}

func newRenderer(t *testing.T) (receipt.Renderer, *s3Mocks.MockS3) {
	ctrl := gomock.NewController(t)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Agency.Name = "Maludy Tour"
	cfg.Agency.Email = "maludytour@gmail.com"
	cfg.Agency.Phone = "+18297732814"
	cfg.Agency.Web = "https://www.maludytour.com"
	cfg.External.S3.BucketName = "maludy-media"
	cfg.External.S3.ReceiptDir = "receipts"

	return receipt.New(cfg, mockS3, mocks.NewOtel()), mockS3
}

func TestRenderer_Render(t *testing.T) {
	renderer, mockS3 := newRenderer(t)

	var uploaded []byte

	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), "maludy-media", "receipts", "MT-ABCD2345.pdf", "application/pdf", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _ string, fileData []byte) (string, error) {
			uploaded = fileData
			return "https://cdn/receipts/MT-ABCD2345.pdf", nil
		})

	url, err := renderer.Render(context.Background(), testData())

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/receipts/MT-ABCD2345.pdf", url)

	// A real PDF document starts with the magic header.
	require.Greater(t, len(uploaded), 4)
	assert.Equal(t, "%PDF", string(uploaded[:4]))
}

func TestRenderer_Render_SanitizesFileName(t *testing.T) {
	renderer, mockS3 := newRenderer(t)

	data := testData()
	data.ReservationNo = "MT/AB CD#45"

	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), "MT_AB_CD_45.pdf", gomock.Any(), gomock.Any()).
		Return("https://cdn/receipts/MT_AB_CD_45.pdf", nil)

	_, err := renderer.Render(context.Background(), data)

	assert.NoError(t, err)
}

func TestRenderer_Render_UploadFailure(t *testing.T) {
	renderer, mockS3 := newRenderer(t)

	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("storage unavailable"))

	_, err := renderer.Render(context.Background(), testData())

	assert.Error(t, err)
}
