package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"linkvault/config"
	domainerrors "linkvault/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "h"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateProfileQR("https://links.example.com/alice")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateProfileQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GenerateProfileQR("https://links.example.com/bob")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_GenerateProfileQR_EmptyURL(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateProfileQR("  ")
	assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredField)
}

func TestNew_FromConfig(t *testing.T) {
	assert.NotNil(t, New(&config.Config{}))
	assert.NotNil(t, New(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}))
}
