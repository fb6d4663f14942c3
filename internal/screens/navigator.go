// Package screens holds the kiosk screens. Each screen owns its own full-screen window;
// moving between screens opens the next window before closing the current one so the
// driver never runs out of windows.
package screens

import (
	"qr-kiosk/internal/config"
	"qr-kiosk/internal/logger"
	"qr-kiosk/internal/qr"
	"qr-kiosk/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

const AppTitle = "QR image kiosk"

// Screen is anything the navigator can bring to the front.
type Screen interface {
	Show()
	Window() fyne.Window
}

type QRGenerator interface {
	Generate(imagePath string) (*qr.Result, error)
}

// ServerLauncher starts the download server; calls after the first are ignored.
type ServerLauncher interface {
	Start()
}

// Deps is the read-only wiring every screen is constructed from.
type Deps struct {
	App        fyne.App
	Config     *config.Config
	Store      *store.Store
	Generator  QRGenerator
	Launcher   ServerLauncher
	Logger     logger.Logger
	FullScreen bool

	// Notify builds the error channel for a window. Nil means modal dialogs.
	Notify func(fyne.Window) Notifier
	// Create builds the image creation screen. Nil means the placeholder.
	Create func(*Navigator) Screen
	// Quit ends the application. Nil means App.Quit.
	Quit func()
}

type Navigator struct {
	deps    Deps
	current Screen
}

func NewNavigator(deps Deps) *Navigator {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if deps.Notify == nil {
		log := deps.Logger
		deps.Notify = func(w fyne.Window) Notifier { return NewDialogNotifier(w, log) }
	}
	if deps.Quit == nil {
		deps.Quit = deps.App.Quit
	}
	return &Navigator{deps: deps}
}

// Current returns the screen whose window is on top.
func (n *Navigator) Current() Screen {
	return n.current
}

// Start shows the main menu.
func (n *Navigator) Start() {
	n.open(n.NewMenuScreen())
}

// Menu replaces the current screen with the main menu.
func (n *Navigator) Menu() {
	n.replace(n.NewMenuScreen())
}

func (n *Navigator) Fetch() {
	n.replace(n.NewFetchScreen())
}

func (n *Navigator) Create() {
	var next Screen
	if n.deps.Create != nil {
		next = n.deps.Create(n)
	} else {
		next = n.NewCreateScreen()
	}
	n.replace(next)
}

func (n *Navigator) Quit() {
	n.deps.Logger.Info("Navigator", "quit requested", nil)
	n.deps.Quit()
}

func (n *Navigator) open(next Screen) {
	next.Show()
	n.current = next
}

func (n *Navigator) replace(next Screen) {
	previous := n.current
	n.open(next)
	if previous != nil && previous.Window() != nil {
		previous.Window().Close()
	}
}

func (n *Navigator) newWindow(title string) fyne.Window {
	w := n.deps.App.NewWindow(title)
	if n.deps.FullScreen {
		w.SetFullScreen(true)
	} else {
		w.Resize(fyne.NewSize(1280, 800))
		w.CenterOnScreen()
	}
	return w
}

// heading renders the large kiosk titles.
func heading(text string, size float32) *canvas.Text {
	t := canvas.NewText(text, theme.Color(theme.ColorNameForeground))
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: true}
	t.Alignment = fyne.TextAlignCenter
	return t
}
