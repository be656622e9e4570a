package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrIndexUnavailable = errors.New("search index unavailable")
	ErrVaultNotFound    = errors.New("vault not found")
)

// ScanError wraps a failure in one section of a scan with the section name
// so a partial report can still say where it went wrong.
type ScanError struct {
	Section string
	Err     error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s scan: %v", e.Section, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
