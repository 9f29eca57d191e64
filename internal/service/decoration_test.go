package service

import (
	"testing"

	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryNthPage(t *testing.T) {
	tests := []struct {
		name string
		n    int
		page int
		want bool
	}{
		{"tenth page of ten", 10, 10, true},
		{"twentieth page of ten", 10, 20, true},
		{"ninth page of ten", 10, 9, false},
		{"every page", 1, 7, true},
		{"zero never decorates", 0, 10, false},
		{"negative never decorates", -3, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EveryNthPage(tt.n)(tt.page))
		})
	}
}

func TestDecorationPolicy_ForPage(t *testing.T) {
	p := testDecoration(10)
	want := &store.Decoration{Title: testTitle, Description: testDescription}

	// Replace всегда начинается с заголовка и описания
	assert.Equal(t, want, p.forPage(models.Replace, 3))
	assert.Equal(t, want, p.forPage(models.Append, 10))
	assert.Nil(t, p.forPage(models.Append, 11))
}

func TestDecorationPolicy_ZeroValueDecoratesNothing(t *testing.T) {
	var p DecorationPolicy

	assert.Nil(t, p.forPage(models.Replace, 1))
	assert.Nil(t, p.forPage(models.Append, 10))
}

func TestDecorationPolicy_NilPredicate(t *testing.T) {
	p := DecorationPolicy{Title: testTitle}

	assert.NotNil(t, p.forPage(models.Replace, 1))
	assert.Nil(t, p.forPage(models.Append, 10))
}

func TestNewDecorationPolicy(t *testing.T) {
	p := NewDecorationPolicy(config.ClientApp{
		Title:         "Locations",
		Description:   "Every place",
		DecorateEvery: 5,
		SwitchAction:  "more",
	})

	assert.Equal(t, models.Title{Text: "Locations"}, p.Title)
	assert.Equal(t, models.Description{Text: "Every place", SwitchActionID: "more"}, p.Description)
	require.NotNil(t, p.ShouldDecorate)
	assert.True(t, p.ShouldDecorate(5))
	assert.False(t, p.ShouldDecorate(6))
}
