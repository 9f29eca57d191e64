package diff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-feed-sync/models"
)

// ErrInvalidOp is returned by Apply when an op does not fit the collection.
var ErrInvalidOp = errors.New("invalid edit op")

// Apply runs script against a copy of items and returns the result. items
// itself is never modified.
func Apply(items []models.Item, script models.EditScript) ([]models.Item, error) {
	out := slices.Clone(items)

	for n, op := range script {
		switch op.Kind {
		case models.OpInsert:
			if op.Index < 0 || op.Index > len(out) || op.Item == nil {
				return nil, fmt.Errorf("%w: op %d %s on %d items", ErrInvalidOp, n, op, len(out))
			}
			out = slices.Insert(out, op.Index, op.Item)
		case models.OpRemove:
			if op.Index < 0 || op.Index >= len(out) {
				return nil, fmt.Errorf("%w: op %d %s on %d items", ErrInvalidOp, n, op, len(out))
			}
			out = slices.Delete(out, op.Index, op.Index+1)
		case models.OpUpdate:
			if op.Index < 0 || op.Index >= len(out) || op.Item == nil {
				return nil, fmt.Errorf("%w: op %d %s on %d items", ErrInvalidOp, n, op, len(out))
			}
			out[op.Index] = op.Item
		default:
			return nil, fmt.Errorf("%w: op %d has unknown kind %d", ErrInvalidOp, n, op.Kind)
		}
	}

	return out, nil
}
