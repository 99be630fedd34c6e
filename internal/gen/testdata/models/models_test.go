package models

type ignored struct {
	Field string
}
