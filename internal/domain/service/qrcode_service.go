package service

// QRCodeService renders share codes for public profile URLs.
type QRCodeService interface {
	// GenerateProfileQR returns a PNG encoding url.
	GenerateProfileQR(url string) ([]byte, error)
}
