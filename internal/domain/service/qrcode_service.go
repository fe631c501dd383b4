package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateJoinQR generates a QR code encoding a vacation share code
	GenerateJoinQR(shareCode string) ([]byte, error)

	// ParseJoinQR parses QR code data and returns the share code
	ParseJoinQR(qrData string) (string, error)
}
