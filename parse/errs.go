package parse

import "errors"

var ErrNoFormat = errors.New("text does not decode in any supported format")
