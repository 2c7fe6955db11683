package qrcode

import (
	"testing"

	"photoverify/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name         string
		cfg          *config.Config
		expectSize   int
		expectLevel  qrcode.RecoveryLevel
		expectViewer string
	}{
		{"defaults", &config.Config{}, defaultSize, qrcode.Medium, defaultViewerURL},
		{
			"configured",
			&config.Config{QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H", BaseURL: "https://verify.example.com/viewer/"}},
			512, qrcode.Highest, "https://verify.example.com/viewer",
		},
		{"unknown level", &config.Config{QRCode: &config.QRCodeConfig{ErrorCorrectionLevel: "invalid"}}, defaultSize, qrcode.Medium, defaultViewerURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg).(*qrcodeService)
			assert.Equal(t, tt.expectSize, svc.size)
			assert.Equal(t, tt.expectLevel, svc.errorCorrectionLevel)
			assert.Equal(t, tt.expectViewer, svc.viewerURL)
		})
	}
}

func TestQRCodeService_GenerateLocationQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://verify.example.com/viewer")

	qrBytes, err := svc.GenerateLocationQR("loc_berlin_mitte")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = svc.GenerateLocationQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_ViewerLink(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://verify.example.com/viewer")

	assert.Equal(t, "https://verify.example.com/viewer?locationId=loc+munich%26center", svc.viewerLink("loc munich&center"))
}
