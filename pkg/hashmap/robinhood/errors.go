package robinhood

import "github.com/pkg/errors"

var ErrKeyNotFound = errors.New("robinhood: key not found")
