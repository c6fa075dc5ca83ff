package analytics

import "errors"

var ErrInternal = errors.New("internal error")
