package system

import "errors"

var ErrInternal = errors.New("internal error")
