package service

import (
	"context"
	"errors"

	"shop-admin/internal/apperr"
)

// Resource is the uniform operation surface every entity family exposes to
// the transport layer. P is the create/update payload type, E the entity.
// Every method returns a classified error so transport only has to map it
// onto a response.
type Resource[P any, E any] interface {
	List(ctx context.Context) ([]E, *apperr.Error)
	Get(ctx context.Context, id int64) (*E, *apperr.Error)
	Create(ctx context.Context, payload P) *apperr.Error
	Update(ctx context.Context, id int64, payload P) *apperr.Error
	Delete(ctx context.Context, id int64) *apperr.Error
	DeleteMany(ctx context.Context, ids []int64) *apperr.Error
}

// requireIDs rejects an empty bulk-delete id set before any statement is
// constructed; the store is never touched for an empty set.
func requireIDs(ids []int64) *apperr.Error {
	if len(ids) == 0 {
		return apperr.Validation(apperr.FieldError{Field: "ids", Message: "No IDs provided"})
	}
	return nil
}

// classify maps repository sentinels onto error kinds: a listed sentinel
// becomes NotFound, anything else is an opaque store failure.
func classify(err error, notFound ...error) *apperr.Error {
	for _, sentinel := range notFound {
		if errors.Is(err, sentinel) {
			return apperr.NotFound()
		}
	}
	return apperr.Store(err)
}
