package domain

import "errors"

var (
	ErrInvalidCode      = errors.New("invalid tag code")
	ErrTagAlreadyLinked = errors.New("tag is already linked to an item")
	ErrTagNotLinked     = errors.New("tag is not linked to this item")
)
