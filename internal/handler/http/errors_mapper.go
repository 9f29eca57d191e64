package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-feed-sync/internal/service"
	"github.com/MKhiriev/go-feed-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrPageNotFound:    http.StatusNotFound,
	service.ErrUnknownResource: http.StatusNotFound,
	store.ErrUnknownResource:   http.StatusNotFound,
	store.ErrReadingDataset:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus keeps internal error text off the wire.
func messageFromStatus(status int) string {
	if status == http.StatusNotFound {
		return nothingHere
	}
	return http.StatusText(status)
}
