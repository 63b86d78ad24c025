package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	attendanceDate := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 2, 10, 9, 15, 30, 123456789, time.UTC)

	token := EncodeToken(attendanceDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, attendanceDate, decodedDate, "Attendance date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separator
	invalidToken := "MjAyNC0wMi0xMFQwMDowMDowMFo="
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")
}
