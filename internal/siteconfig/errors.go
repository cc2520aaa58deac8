package siteconfig

import "errors"

// ErrInvalidJSON marks content that does not parse as a JSON object.
var ErrInvalidJSON = errors.New("invalid JSON document")
