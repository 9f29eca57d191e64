// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/models"
)

// nothingHere is the error text the public feed answers unknown pages with.
// Clients match on the 404 status, the text is informational.
const nothingHere = "There is nothing here"

func writeError(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, models.FeedErrorResponse{Error: message}, status)
}

func writeNothingHere(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, nothingHere)
}
