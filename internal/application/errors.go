package application

import "errors"

// ErrFetch marks transport failures while retrieving the quote source.
var ErrFetch = errors.New("fetch failed")
