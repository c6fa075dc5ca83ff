package notification

import "errors"

var ErrDeliveryFailed = errors.New("notification delivery failed")
