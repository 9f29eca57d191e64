package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-feed-sync/models"
)

const (
	historyLimit = 10
	hashWidth    = 8
)

func renderHistory(entries []models.JournalEntry, err error) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Журнал сессии"))
	b.WriteString("\n")

	if err != nil {
		b.WriteString(errorStyle.Render("Ошибка чтения журнала: " + err.Error()))
		return b.String()
	}
	if len(entries) == 0 {
		b.WriteString(helpStyle.Render("Пусто"))
		return b.String()
	}

	for _, e := range entries {
		outcome := string(e.Outcome)
		if e.FailureKind != "" {
			outcome += " (" + e.FailureKind + ")"
		}
		b.WriteString(fmt.Sprintf("%s  %-9s  стр.%-3d  %-24s  +%d ~%d -%d  %4d  %s\n",
			e.CreatedAt.Local().Format("15:04:05"),
			e.Navigation,
			e.Page,
			outcome,
			e.Inserts, e.Updates, e.Removes,
			e.ItemCount,
			fitHash(e.SnapshotHash),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func fitHash(h string) string {
	if len(h) > hashWidth {
		return h[:hashWidth]
	}
	return h
}
