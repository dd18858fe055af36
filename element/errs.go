package element

import "errors"

var (
	ErrParse             = errors.New("parse error")
	ErrUnimplementedType = errors.New("unimplemented type")
)
