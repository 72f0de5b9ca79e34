package pack

import "errors"

var (
	ErrInputList = errors.New("cannot read input list")
	ErrInterp    = errors.New("interpreter discovery failed")
)
