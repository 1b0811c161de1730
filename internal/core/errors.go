package core

import (
	"errors"
	"fmt"
)

// Error values returned by the loader and the web boundary. The strings
// deliberately match the patterns in error_messages.go so MapError resolves
// them to stable codes.
var (
	// ErrNoFile indicates the request carried no file part or an empty filename.
	ErrNoFile = errors.New("no file provided")

	// ErrEmptyFile indicates the uploaded file had no content at all.
	ErrEmptyFile = errors.New("empty file")

	// ErrNoDuplicates indicates a download was requested while the session
	// holds no export buffer.
	ErrNoDuplicates = errors.New("no duplicates found in the last uploaded file")
)

// ParseError indicates the uploaded bytes are not valid delimited tabular text.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid csv: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SizeLimitError indicates the upload exceeds the configured byte cap.
// It is returned before any parsing happens.
type SizeLimitError struct {
	Size int64
	Max  int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("file too large: %d bytes exceeds the %d byte limit", e.Size, e.Max)
}

// CheckSize validates an upload size against the configured maximum.
func CheckSize(size, max int64) error {
	if size > max {
		return &SizeLimitError{Size: size, Max: max}
	}
	return nil
}
