package pkg

import "errors"

var (
	ErrInputUnreadable  = errors.New("input unreadable")
	ErrCorruptHeader    = errors.New("corrupt frequency header")
	ErrTruncatedPayload = errors.New("truncated payload")
	ErrOutputTooLarge   = errors.New("decoded output exceeds limit")
)
