package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsDownloadURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"https url", "https://cdn.example.com/a.png", true},
		{"http url", "http://localhost:9000/bucket/a.png", true},
		{"bare file id", "abc", false},
		{"empty", "", false},
		{"scheme without slashes", "https:cdn", false},
		{"other scheme", "ftp://example.com/a.png", false},
		{"uppercase scheme", "HTTPS://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDownloadURL(tt.input))
		})
	}
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "file1", ObjectName("", "file1", ""))
	assert.Equal(t, "thumb/file1", ObjectName("", "file1", "thumb"))
	assert.Equal(t, "media/file1", ObjectName("/media/", "file1", ""))
	assert.Equal(t, "media/large/file1", ObjectName("media", "file1", "large"))
}

func TestSecondsToDuration(t *testing.T) {
	zero, negative, ten := 0, -5, 10

	assert.Equal(t, time.Duration(0), SecondsToDuration(nil))
	assert.Equal(t, time.Duration(0), SecondsToDuration(&zero))
	assert.Equal(t, time.Duration(0), SecondsToDuration(&negative))
	assert.Equal(t, 10*time.Second, SecondsToDuration(&ten))
}

func TestSecondsToDuration_Saturates(t *testing.T) {
	huge := math.MaxInt

	d := SecondsToDuration(&huge)
	assert.Positive(t, d)
	assert.Equal(t, time.Duration(maxDurationSeconds)*time.Second, d)
}
