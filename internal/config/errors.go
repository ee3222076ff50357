package config

import "errors"

// ErrInvalidConfig wraps every validation failure of a configuration record.
var ErrInvalidConfig = errors.New("config: invalid configuration")
