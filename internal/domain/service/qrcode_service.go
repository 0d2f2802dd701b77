package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePNG encodes the given content as a QR code PNG image.
	GeneratePNG(content string) ([]byte, error)
}
