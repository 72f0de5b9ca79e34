package closure

import "errors"

var (
	ErrLinkDepth = errors.New("maximum link depth exceeded")
	ErrReadLink  = errors.New("cannot read symbolic link")
)
