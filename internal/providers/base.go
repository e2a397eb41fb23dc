package providers

import (
	"errors"

	"github.com/google/uuid"
)

// Crud is the uniform contract every provider implements: list, fetch,
// create, partial update, delete. E is the persisted entity, C and U the
// create and update inputs.
//
// GetByID and Update return (nil, nil) when no row matches; absence is a
// value, not an error. Delete of a missing id is not an error either.
type Crud[E any, C any, U any] interface {
	GetAll() ([]E, error)
	GetByID(id uuid.UUID) (*E, error)
	Create(input C) (*E, error)
	Update(input U) (*E, error)
	Delete(id uuid.UUID) error
}

// ErrCompositeKey is returned by single-key accessors on entities whose
// primary key spans multiple columns. Callers must use the composite
// accessor instead; this is a usage error, not a runtime condition.
var ErrCompositeKey = errors.New("entity has a composite key")
