package config

import "errors"

// ErrUnknownKey is returned when a rules file sets a key Config does not
// define.
var ErrUnknownKey = errors.New("unknown config key")
