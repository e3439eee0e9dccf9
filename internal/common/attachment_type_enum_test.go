package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		want     AttachmentFileType
	}{
		{"png image", "image/png", AttachmentTypeImage},
		{"jpeg image", "image/jpeg", AttachmentTypeImage},
		{"pdf document", "application/pdf", AttachmentTypeDocument},
		{"plain text", "text/plain", AttachmentTypeDocument},
		{"word document", "application/msword", AttachmentTypeDocument},
		{"docx document", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", AttachmentTypeDocument},
		{"uppercase normalized", "IMAGE/PNG", AttachmentTypeImage},
		{"padded whitespace", "  image/gif ", AttachmentTypeImage},
		{"video rejected", "video/mp4", AttachmentTypeUnknown},
		{"empty", "", AttachmentTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFileType(tt.mimeType))
		})
	}
}

func TestAttachmentFileType_String(t *testing.T) {
	assert.Equal(t, "image", AttachmentTypeImage.String())
	assert.Equal(t, "document", AttachmentTypeDocument.String())
	assert.Equal(t, "unknown", AttachmentTypeUnknown.String())
	assert.Equal(t, "unknown", AttachmentFileType(99).String())
}
