package weight

import (
	"errors"
	"fmt"
)

// Endpoint roles reported by MissingMetadataError.
const (
	RoleCiting = "citing"
	RoleCited  = "cited"
)

// MissingMetadataError reports an edge endpoint without a known
// publication year. A missing year is never scored as zero.
type MissingMetadataError struct {
	PaperID string
	Role    string // RoleCiting or RoleCited
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("no publication year for %s paper %q", e.Role, e.PaperID)
}

// IsMissingMetadata returns true if err is or wraps a *MissingMetadataError.
func IsMissingMetadata(err error) bool {
	var me *MissingMetadataError
	return errors.As(err, &me)
}
