package screens

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CreateScreen stands in for the image creation flow, which ships separately. It
// writes nothing and leads back to the menu.
type CreateScreen struct {
	nav        *Navigator
	window     fyne.Window
	backButton *widget.Button
}

func (n *Navigator) NewCreateScreen() *CreateScreen {
	return &CreateScreen{nav: n}
}

func (c *CreateScreen) Window() fyne.Window {
	return c.window
}

func (c *CreateScreen) Show() {
	c.window = c.nav.newWindow(AppTitle)

	message := widget.NewLabelWithStyle(
		"Image creation is not available on this kiosk.",
		fyne.TextAlignCenter,
		fyne.TextStyle{},
	)
	c.backButton = widget.NewButton("Back to start", c.nav.Menu)

	c.window.SetContent(container.NewCenter(container.NewVBox(
		heading("Create image", 30),
		message,
		c.backButton,
	)))
	c.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			c.nav.Menu()
		}
	})
	c.window.Show()
}
