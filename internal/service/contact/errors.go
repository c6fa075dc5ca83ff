package contact

import "errors"

var ErrInternal = errors.New("internal error")
