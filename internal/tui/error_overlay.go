package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n"
	content += m.message + "\n\n"
	content += "enter close"
	return overlayBoxStyle.Render(content)
}
