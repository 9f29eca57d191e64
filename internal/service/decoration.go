package service

import (
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/models"
)

// DecorationPolicy decides which client-inserted rows precede a page.
//
// Replace navigations always start with the decoration. An appended page is
// decorated only when ShouldDecorate holds for its index. The zero value
// decorates nothing.
type DecorationPolicy struct {
	Title          models.Title
	Description    models.Description
	ShouldDecorate func(page int) bool
}

// NewDecorationPolicy builds the policy from the client config. A negative
// DecorateEvery disables decoration of appended pages.
func NewDecorationPolicy(cfg config.ClientApp) DecorationPolicy {
	return DecorationPolicy{
		Title:          models.Title{Text: cfg.Title},
		Description:    models.Description{Text: cfg.Description, SwitchActionID: cfg.SwitchAction},
		ShouldDecorate: EveryNthPage(cfg.DecorateEvery),
	}
}

// EveryNthPage holds for pages divisible by n. It never holds for n <= 0.
func EveryNthPage(n int) func(page int) bool {
	if n <= 0 {
		return func(int) bool { return false }
	}
	return func(page int) bool { return page%n == 0 }
}

func (p DecorationPolicy) present() bool {
	return p.Title.Text != "" || p.Description.Text != ""
}

// forPage returns the decoration the merge of page under policy should carry,
// or nil.
func (p DecorationPolicy) forPage(policy models.MergePolicy, page int) *store.Decoration {
	if !p.present() {
		return nil
	}
	if policy == models.Append && (p.ShouldDecorate == nil || !p.ShouldDecorate(page)) {
		return nil
	}
	return &store.Decoration{Title: p.Title, Description: p.Description}
}
