// Package qrcode renders location viewer links as QR code images.
package qrcode

import (
	"net/url"
	"strings"

	"photoverify/config"
	"photoverify/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize         = 256
	defaultViewerURL    = "http://localhost:5173/viewer"
	locationIDQueryName = "locationId"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	viewerURL            string
}

// NewQRCodeService creates a QR code service from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, viewerURL := defaultSize, "M", defaultViewerURL
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.BaseURL != "" {
			viewerURL = cfg.QRCode.BaseURL
		}
	}

	return newQRCodeService(size, level, viewerURL)
}

func newQRCodeService(size int, errorCorrectionLevel, viewerURL string) *qrcodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		viewerURL:            strings.TrimRight(viewerURL, "/"),
	}
}

// viewerLink builds the viewer URL embedded in a location QR code.
func (s *qrcodeService) viewerLink(locationID string) string {
	return s.viewerURL + "?" + url.Values{locationIDQueryName: {locationID}}.Encode()
}

// GenerateLocationQR generates a PNG QR code linking to the viewer page of a location
func (s *qrcodeService) GenerateLocationQR(locationID string) ([]byte, error) {
	if strings.TrimSpace(locationID) == "" {
		return nil, errors.New("location ID is required")
	}

	qrCode, err := qrcode.New(s.viewerLink(locationID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
