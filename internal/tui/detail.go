package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-feed-sync/models"
)

func renderRecordDetail(r models.Record) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ID: %d\n", r.ExternalID))
	b.WriteString("Имя: ")
	b.WriteString(valueOrDash(r.Name))
	b.WriteString("\n")
	b.WriteString("Статус: ")
	b.WriteString(valueOrDash(r.Status))
	b.WriteString("\n")
	b.WriteString("Вид: ")
	b.WriteString(valueOrDash(r.Species))
	b.WriteString("\n")
	b.WriteString("Изображение: ")
	b.WriteString(valueOrDash(r.ImageRef))

	return renderPage("ЗАПИСЬ", b.String(), "c: копировать ссылку  esc: назад")
}
