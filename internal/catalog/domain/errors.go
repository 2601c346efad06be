package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrSlugTaken       = errors.New("slug already in use")
)
