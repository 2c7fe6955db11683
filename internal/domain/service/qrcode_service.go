package service

// QRCodeService renders location QR codes
type QRCodeService interface {
	// GenerateLocationQR generates a PNG QR code linking to the viewer page of a location
	GenerateLocationQR(locationID string) ([]byte, error)
}
