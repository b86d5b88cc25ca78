package service

// QRCodeService renders QR code images for catalog share links.
type QRCodeService interface {
	// GenerateShareQR returns a PNG image encoding the given share link URL.
	GenerateShareQR(link string) ([]byte, error)
}
