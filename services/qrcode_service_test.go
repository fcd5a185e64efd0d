// file: services/qrcode_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-hub/services"
)

func TestGenerateHackathonQR(t *testing.T) {
	png, err := services.GenerateHackathonQR("http://localhost:8080", 42, 256)
	require.NoError(t, err)

	assert.NotEmpty(t, png)
	// PNG magic number
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
