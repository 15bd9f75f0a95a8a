package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateLicenseQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateLicenseQR("AGRO-1234-5678-9012")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic number
	assert.True(t, bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}))
}

func TestQRCodeService_EmptyKey(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateLicenseQR("")
	assert.Error(t, err)
	assert.Nil(t, png)
}

func TestQRCodeService_RecoveryLevels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "unknown"} {
		svc := NewQRCodeService(128, level)

		png, err := svc.GenerateLicenseQR("AGRO-1000-2000-3000")
		require.NoError(t, err, "level %s", level)
		assert.NotEmpty(t, png)
	}
}
