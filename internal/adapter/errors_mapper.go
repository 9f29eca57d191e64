package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response, page int) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	// the feed answers unknown pages with {"error": "..."}
	var feedErr models.FeedErrorResponse
	if err := json.Unmarshal(resp.Body(), &feedErr); err == nil && feedErr.Error != "" {
		body = feedErr.Error
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return rejectedError(page, resp.StatusCode(), errors.New(body))
}

func decodePage(body []byte, page int) (models.PageBatch, error) {
	var payload models.FeedPageResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.PageBatch{}, malformedError(page, fmt.Errorf("decode body: %w", err))
	}

	if payload.Results == nil {
		return models.PageBatch{}, malformedError(page, errors.New("response has no results"))
	}

	records := make([]models.Record, 0, len(payload.Results))
	for i, r := range payload.Results {
		if r.ID <= 0 {
			return models.PageBatch{}, malformedError(page, fmt.Errorf("result %d has no id", i))
		}
		records = append(records, r.ToRecord())
	}

	return models.PageBatch{
		Page:        page,
		Records:     records,
		HasPrevious: payload.Info.Prev != nil,
		HasNext:     payload.Info.Next != nil,
	}, nil
}
