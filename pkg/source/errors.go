package source

import "fmt"

// InvalidEncodingError reports input that cannot be decoded as valid UTF-8.
// Offset is the byte offset of the first invalid sequence.
type InvalidEncodingError struct {
	Path   string
	Offset int
}

// Error implements the error interface.
func (e *InvalidEncodingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid UTF-8 encoding at byte %d", e.Offset)
	}
	return fmt.Sprintf("%s: invalid UTF-8 encoding at byte %d", e.Path, e.Offset)
}
