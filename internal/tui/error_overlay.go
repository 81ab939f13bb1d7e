package tui

// dialogModel is a blocking error dialog. Keys other than enter and esc are
// swallowed while it is shown.
type dialogModel struct {
	title string
	text  string
}

func (m dialogModel) visible() bool {
	return m.title != "" || m.text != ""
}

func (m dialogModel) View() string {
	content := errorStyle.Render(m.title) + "\n\n" + m.text + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}
