// Package v1 implements the handlers for the v1 API.
package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-cloud/backend/internal/models"
)

// Controller carries the dependencies of all v1 handlers.
type Controller struct {
	Store models.Store
	Now   func() time.Time
	NewID func() string
}

// New returns a Controller using the system clock and random UUIDs.
func New(store models.Store) Controller {
	return Controller{
		Store: store,
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

func (co Controller) newID() string {
	if co.NewID == nil {
		return uuid.NewString()
	}
	return co.NewID()
}
