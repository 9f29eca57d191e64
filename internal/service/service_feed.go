package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/models"
)

type feedService struct {
	dataset  store.FeedDatasetRepository
	pageSize int

	logger *logger.Logger
}

// NewFeedService pages dataset in pages of pageSize records.
func NewFeedService(dataset store.FeedDatasetRepository, pageSize int, logger *logger.Logger) FeedService {
	return &feedService{
		dataset:  dataset,
		pageSize: pageSize,
		logger:   logger,
	}
}

// GetPage implements [FeedService]. An empty resource still has one empty
// page, so a client's first load never fails on it.
func (s *feedService) GetPage(ctx context.Context, query models.FeedPageQuery) (models.FeedPageResponse, error) {
	log := logger.FromContext(ctx)

	count, err := s.dataset.Count(ctx, query.Resource)
	if err != nil {
		if errors.Is(err, store.ErrUnknownResource) {
			return models.FeedPageResponse{}, fmt.Errorf("%w: %q", ErrUnknownResource, query.Resource)
		}
		return models.FeedPageResponse{}, err
	}

	pages := max(1, (count+s.pageSize-1)/s.pageSize)
	if query.Page < 1 || query.Page > pages {
		log.Debug().
			Str("func", "feedService.GetPage").
			Str("resource", query.Resource).
			Int("page", query.Page).
			Int("pages", pages).
			Msg("page out of range")
		return models.FeedPageResponse{}, fmt.Errorf("%w: %d of %d", ErrPageNotFound, query.Page, pages)
	}

	results, err := s.dataset.Slice(ctx, query.Resource, (query.Page-1)*s.pageSize, s.pageSize)
	if err != nil {
		return models.FeedPageResponse{}, err
	}

	info := models.FeedPageInfo{Count: count, Pages: pages}
	if query.Page > 1 {
		info.Prev = pageLink(query, query.Page-1)
	}
	if query.Page < pages {
		info.Next = pageLink(query, query.Page+1)
	}

	return models.FeedPageResponse{Info: info, Results: results}, nil
}

func pageLink(query models.FeedPageQuery, page int) *string {
	link := strings.TrimRight(query.BaseURL, "/") + "/api/" + url.PathEscape(query.Resource) +
		"?page=" + strconv.Itoa(page)
	return &link
}
