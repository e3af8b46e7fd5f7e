package domain

import "strings"

type ID string

func (vo ID) String() string {
	return string(vo)
}

func (vo ID) IsEmpty() bool {
	return strings.TrimSpace(string(vo)) == ""
}

type Name string
type DisplayName string
type Description string

// Slug is the operator facing, URL safe identifier of a catalog entry.
type Slug string

func (vo Slug) String() string {
	return string(vo)
}
