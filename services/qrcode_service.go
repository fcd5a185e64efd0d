// services/qrcode_service.go
package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateHackathonQR creates a QR code PNG pointing at a hackathon's
// registration page, for organizers to put on posters.
func GenerateHackathonQR(applicationURL string, hackathonID uint, size int) ([]byte, error) {
	target := fmt.Sprintf("%s/hackathon/%d/register/", applicationURL, hackathonID)

	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
