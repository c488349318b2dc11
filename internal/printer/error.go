package printer

import (
	"errors"
	"fmt"
)

var (
	ErrDeviceNotFound     = errors.New("no printer found during discovery")
	ErrGATTConnect        = errors.New("could not establish GATT session")
	ErrServiceUnavailable = errors.New("printer service unavailable")
	ErrNoWritableChannel  = errors.New("no writable characteristic found")
	ErrNotConnected       = errors.New("printer not connected")
	ErrWriteFailed        = errors.New("chunk write failed")
)

// WriteError reports a mid-stream failure. Chunk is the zero-based
// index of the chunk whose write failed; earlier chunks were already
// accepted and the remainder was never attempted.
type WriteError struct {
	Chunk int
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write of chunk %d failed: %v", e.Chunk, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrWriteFailed) match without losing the
// chunk index.
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}
