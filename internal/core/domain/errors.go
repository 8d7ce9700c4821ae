package domain

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
