package domain

import "errors"

// ErrQuoteUnavailable marks a quote that was received but carries no usable data.
var ErrQuoteUnavailable = errors.New("quote unavailable")
