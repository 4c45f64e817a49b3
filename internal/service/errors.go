package service

import (
	"github.com/pkg/errors"

	"github.com/msb-dashboard/backend/internal/pkg/dasherr"
)

// Dataset failures are reported inside the envelope; their messages reach the dashboard verbatim.
var (
	ErrEmptyDocument     = errors.New("Expecting value: empty JSON document")
	ErrInvalidEncoding   = errors.New("document is not valid UTF-8")
	ErrNotObject         = errors.New("statistics document is not a JSON object")
	ErrLayoutNotFound    = errors.New("layout key not found in bin locations file")
	ErrCSVNotFound       = errors.New("CSV file not found")
	ErrSourceBinNotFound = errors.New("SOURCE_BIN column not found in CSV")
)

var ErrBinRangeTooLarge = dasherr.ErrInvalidReq.Msg("invalid request: bin range exceeds the maximum number of bins")
