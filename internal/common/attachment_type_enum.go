package common

import "strings"

// AttachmentFileType classifies a message attachment.
type AttachmentFileType int

const (
	AttachmentTypeUnknown AttachmentFileType = iota
	AttachmentTypeImage
	AttachmentTypeDocument
)

func (t AttachmentFileType) String() string {
	switch t {
	case AttachmentTypeImage:
		return "image"
	case AttachmentTypeDocument:
		return "document"
	default:
		return "unknown"
	}
}

// DetectFileType maps a MIME type onto an AttachmentFileType.
func DetectFileType(mimeType string) AttachmentFileType {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return AttachmentTypeImage
	case mimeType == "application/pdf",
		mimeType == "text/plain",
		strings.HasPrefix(mimeType, "application/msword"),
		strings.HasPrefix(mimeType, "application/vnd.openxmlformats-officedocument"):
		return AttachmentTypeDocument
	default:
		return AttachmentTypeUnknown
	}
}
