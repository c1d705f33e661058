package gcountdown

import (
	"errors"
)

// ErrInvalidArgument 参数超出取值范围.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidState 当前状态不允许该操作.
var ErrInvalidState = errors.New("invalid state")
