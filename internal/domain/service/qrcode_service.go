package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateLicenseQR renders a license key as a PNG QR code. The POS app
	// scans it during activation instead of typing the key.
	GenerateLicenseQR(key string) ([]byte, error)
}
