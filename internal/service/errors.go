package service

import (
	"errors"

	"github.com/MKhiriev/go-small-safe/internal/validators"
)

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrDuplicateGroup = errors.New("group with this name already exists")
	ErrNoSafe         = errors.New("safe does not exist")

	ErrEmptyName     = validators.ErrEmptyName
	ErrEmptyValue    = validators.ErrEmptyValue
	ErrEmptyPassword = validators.ErrEmptyPassword
	ErrEmptyQuery    = validators.ErrEmptyQuery
)
