package meeting

import "errors"

var ErrInvalidInput = errors.New("title and scheduled time are required")
