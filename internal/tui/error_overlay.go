package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Ошибка\n\n" + m.message + "\n\nr повторить  esc закрыть"
	return overlayBoxStyle.Render(content)
}
