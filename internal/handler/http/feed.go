package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/models"
)

const pageQueryParam = "page"

// getPage serves GET /api/{resource}?page=N. A missing page parameter means
// the first page; anything that is not a number is not found.
func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page := 1
	if raw := r.URL.Query().Get(pageQueryParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Debug().Str("func", "*Handler.getPage").Str("page", raw).Msg("non-numeric page")
			writeNothingHere(w, r)
			return
		}
		page = n
	}

	resp, err := h.services.FeedService.GetPage(r.Context(), models.FeedPageQuery{
		Resource: chi.URLParam(r, "resource"),
		Page:     page,
		BaseURL:  baseURL(r),
	})
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Str("func", "*Handler.getPage").Msg("error getting page")
		}
		writeError(w, status, messageFromStatus(status))
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getPage").Msg("error writing page")
	}
}

// baseURL rebuilds the scheme and host the client used, so that info.next
// and info.prev point back at this server.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host
}
