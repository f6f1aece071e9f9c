package domain

import (
	"strings"
	"time"
)

// derivedNameLayout is the timestamp suffix appended to a derived file name.
const derivedNameLayout = "2006-01-02 15:04:05"

// UploadedFile is a registered WOSA document upload.
type UploadedFile struct {
	ID             int64
	Name           string
	OriginalName   string
	UserID         *string
	FileSize       int64
	Status         FileStatus
	UploadDate     time.Time
	ProcessingDate *time.Time
}

// DerivedFileName returns the unique stored name for an upload: the lowercased
// original file name followed by the UTC upload time at second precision.
func DerivedFileName(filename string, uploadedAt time.Time) string {
	return strings.ToLower(filename) + " " + uploadedAt.UTC().Format(derivedNameLayout)
}

// ProcessingResult summarises one processing run over a document.
type ProcessingResult struct {
	FileID          int64
	Status          FileStatus
	TopicsProcessed int
	TopicsCreated   int
	TopicsUpdated   int
	TopicsUnchanged int
	Errors          []string
	Warnings        []string
}
