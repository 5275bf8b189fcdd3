package upload

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidType = errors.New("only PDF documents are accepted")
	ErrTooLarge    = errors.New("file exceeds the maximum allowed size")
)

// File is a validated upload candidate: the declared metadata plus the raw
// payload handed unchanged to the analysis engine.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}

// Gate validates a candidate file before it may enter the analysis
// pipeline. Pure check, no side effects. The ceiling is advisory; the
// analysis engine may still reject independently.
type Gate struct {
	acceptedType string
	maxSizeBytes int64
}

func NewGate(acceptedType string, maxSizeMB int) *Gate {
	return &Gate{
		acceptedType: acceptedType,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
	}
}

func (g *Gate) Validate(f File) error {
	if f.ContentType != g.acceptedType {
		return fmt.Errorf("%w: got %q", ErrInvalidType, f.ContentType)
	}
	if f.Size > g.maxSizeBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, f.Size, g.maxSizeBytes)
	}
	return nil
}
