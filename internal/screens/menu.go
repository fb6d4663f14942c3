package screens

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MenuScreen offers the two kiosk flows. Escape quits.
type MenuScreen struct {
	nav    *Navigator
	window fyne.Window

	createButton *widget.Button
	fetchButton  *widget.Button
}

func (n *Navigator) NewMenuScreen() *MenuScreen {
	return &MenuScreen{nav: n}
}

func (m *MenuScreen) Window() fyne.Window {
	return m.window
}

func (m *MenuScreen) Show() {
	m.window = m.nav.newWindow(AppTitle)

	m.createButton = widget.NewButton("Create image", m.nav.Create)
	m.fetchButton = widget.NewButton("Fetch image", m.nav.Fetch)
	m.fetchButton.Importance = widget.HighImportance

	buttons := container.NewGridWithColumns(2,
		container.NewGridWrap(fyne.NewSize(320, 96), m.createButton),
		container.NewGridWrap(fyne.NewSize(320, 96), m.fetchButton),
	)

	content := container.NewVBox(
		heading("Choose an option", 30),
		layout.NewSpacer(),
		buttons,
	)

	m.window.SetContent(container.NewCenter(content))
	m.window.Canvas().SetOnTypedKey(m.handleKey)
	m.window.Show()

	m.nav.deps.Logger.Debug("MenuScreen", "menu shown", nil)
}

func (m *MenuScreen) handleKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		m.nav.Quit()
	}
}
