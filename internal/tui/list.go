package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-feed-sync/models"
)

const nameWidth = 32

// rowRenderer writes one line per item. Going through the visitor makes
// every new item kind a compile error here until it gets a row.
type rowRenderer struct {
	b        *strings.Builder
	selected bool
}

var _ models.ItemVisitor = rowRenderer{}

func (r rowRenderer) VisitTitle(t models.Title) {
	r.line(titleStyle.Render(t.Text))
}

func (r rowRenderer) VisitDescription(d models.Description) {
	row := descriptionStyle.Render(d.Text)
	if d.SwitchActionID != "" {
		row += "  " + switchStyle.Render("[enter: следующая страница]")
	}
	r.line(row)
}

func (r rowRenderer) VisitRecord(rec models.Record) {
	r.line(fmt.Sprintf("#%-4d %-*s  %s  %s",
		rec.ExternalID,
		nameWidth, fitText(rec.Name, nameWidth),
		statusView(rec.Status),
		valueOrDash(rec.Species),
	))
}

func (r rowRenderer) line(s string) {
	cursor := "  "
	if r.selected {
		cursor = "> "
	}
	r.b.WriteString(cursor)
	r.b.WriteString(s)
	r.b.WriteString("\n")
}

func statusView(status string) string {
	switch strings.ToLower(status) {
	case "alive":
		return aliveStyle.Render(status)
	case "dead":
		return deadStyle.Render(status)
	default:
		return helpStyle.Render(valueOrDash(status))
	}
}

// renderList draws the rows that fit into height around the selection.
// height <= 0 draws everything.
func renderList(items []models.Item, idx, height int) string {
	if len(items) == 0 {
		return "Нет записей\n"
	}

	var b strings.Builder
	from, to := visibleWindow(idx, len(items), height)
	if from > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ↑ ещё %d", from)))
		b.WriteString("\n")
	}
	for i := from; i < to; i++ {
		items[i].Accept(rowRenderer{b: &b, selected: i == idx})
	}
	if rest := len(items) - to; rest > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ↓ ещё %d", rest)))
		b.WriteString("\n")
	}
	return b.String()
}

func visibleWindow(idx, total, height int) (from, to int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	from = idx - height/2
	if from < 0 {
		from = 0
	}
	if from > total-height {
		from = total - height
	}
	return from, from + height
}

func renderNavBar(nav models.NavigationState) string {
	return fmt.Sprintf("%s   страница %d   %s",
		navButton("← p: назад", nav.CanGoPrevious),
		nav.Page,
		navButton("n: далее →", nav.CanGoNext),
	)
}

func navButton(label string, enabled bool) string {
	if enabled {
		return buttonStyle.Render(label)
	}
	return helpStyle.Render(label)
}
