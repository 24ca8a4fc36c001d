package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	t.Run("Valid data URL decodes with extension", func(t *testing.T) {
		payload := []byte{0x89, 0x50, 0x4e, 0x47}
		encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

		data, ext, err := DecodeBase64Image(encoded)

		require.NoError(t, err)
		assert.Equal(t, payload, data)
		assert.Equal(t, ".png", ext)
	})

	t.Run("Missing data URL prefix fails", func(t *testing.T) {
		_, _, err := DecodeBase64Image("iVBORw0KGgo=")
		assert.Error(t, err)
	})

	t.Run("Broken base64 fails", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64,@@@not-base64@@@")
		assert.Error(t, err)
	})
}

func TestValidateImageFormat(t *testing.T) {
	allowed := []string{".png", ".jpg", ".jpeg"}

	assert.NoError(t, ValidateImageFormat(".png", allowed))
	assert.Error(t, ValidateImageFormat(".gif", allowed))
}

func TestValidateImageSize(t *testing.T) {
	assert.NoError(t, ValidateImageSize(make([]byte, 1024), 2))
	assert.Error(t, ValidateImageSize(make([]byte, 3*1024*1024), 2))
}
