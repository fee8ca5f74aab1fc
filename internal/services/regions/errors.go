package regions

import (
	apperrors "github.com/killallgit/nzwalks-api/pkg/errors"
)

// ErrRegionNotFound is returned when no region has the requested identifier
var ErrRegionNotFound = apperrors.New(apperrors.ErrCodeNotFound, "region not found")
