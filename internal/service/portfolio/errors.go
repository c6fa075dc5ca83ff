package portfolio

import "errors"

var (
	ErrContentInvalid = errors.New("portfolio content is invalid")
	ErrContentRead    = errors.New("failed to read portfolio content")
)
