package domain

import "errors"

// ErrReportProcess wraps any fault raised by the PDF rendering engine.
var ErrReportProcess = errors.New("report rendering failed")
