package screens

import (
	"errors"
	"fmt"
	"image"

	"qr-kiosk/internal/imaging"
	kioskLayout "qr-kiosk/internal/layout"
	"qr-kiosk/internal/qr"
	"qr-kiosk/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	columnSlack = 40
	columnGap   = 100
)

type fetchState int

const (
	stateForm fetchState = iota
	stateResult
)

// FetchScreen looks a record up by identifier and shows it next to a download QR code.
//
// FORM --search hit--> RESULT --back--> FORM, and Escape in FORM returns to the menu.
// RESULT ignores both Enter and Escape.
type FetchScreen struct {
	nav      *Navigator
	window   fyne.Window
	notifier Notifier
	state    fetchState

	entry        *formEntry
	searchButton *widget.Button
	backButton   *widget.Button
	urlLabel     *widget.Label
	warning      *widget.Label
	result       *qr.Result
}

func (n *Navigator) NewFetchScreen() *FetchScreen {
	return &FetchScreen{nav: n}
}

func (f *FetchScreen) Window() fyne.Window {
	return f.window
}

func (f *FetchScreen) Show() {
	f.window = f.nav.newWindow(AppTitle)
	f.notifier = f.nav.deps.Notify(f.window)

	f.showForm()
	f.window.Canvas().SetOnTypedKey(f.handleKey)
	f.window.Show()

	// Runs for the rest of the process; leaving this screen does not stop it.
	f.nav.deps.Launcher.Start()
}

func (f *FetchScreen) showForm() {
	f.state = stateForm
	f.result = nil

	f.entry = newFormEntry(func() {
		f.handleKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	})
	f.entry.SetPlaceHolder("Image ID")
	f.entry.OnSubmitted = func(string) { f.Search() }

	f.searchButton = widget.NewButton("Search image", f.Search)
	f.searchButton.Importance = widget.HighImportance

	form := container.NewVBox(
		heading("QR image fetcher", 36),
		widget.NewLabelWithStyle("Type the ID of your image:", fyne.TextAlignCenter, fyne.TextStyle{}),
		container.NewGridWrap(fyne.NewSize(360, 48), f.entry),
		container.NewGridWrap(fyne.NewSize(360, 64), f.searchButton),
	)

	f.window.SetContent(container.NewCenter(form))
	f.window.Canvas().Focus(f.entry)
}

// Search resolves the typed identifier. A miss notifies once and leaves the form as is.
func (f *FetchScreen) Search() {
	if f.state != stateForm {
		return
	}

	log := f.nav.deps.Logger
	id := store.NormalizeID(f.entry.Text)

	path, err := f.nav.deps.Store.Lookup(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("FetchScreen", "image not found", map[string]interface{}{"id": id})
			f.notifier.NotifyError("Error", fmt.Errorf("no image found for %q", id))
			return
		}
		log.Error("FetchScreen", "image lookup failed", err, map[string]interface{}{"id": id})
		f.notifier.NotifyError("Error", err)
		return
	}

	cfg := f.nav.deps.Config
	photo, err := imaging.LoadResized(path, cfg.ImageDisplay, false)
	if err != nil {
		log.Error("FetchScreen", "image decode failed", err, map[string]interface{}{"path": path})
		f.notifier.NotifyError("Error", err)
		return
	}

	result, err := f.nav.deps.Generator.Generate(path)
	if err != nil {
		log.Error("FetchScreen", "QR generation failed", err, map[string]interface{}{"path": path})
		f.notifier.NotifyError("Error", err)
		return
	}

	code, err := imaging.LoadResized(result.Path, cfg.QRDisplay, true)
	if err != nil {
		log.Error("FetchScreen", "QR decode failed", err, map[string]interface{}{"path": result.Path})
		f.notifier.NotifyError("Error", err)
		return
	}

	log.Info("FetchScreen", "image found", map[string]interface{}{
		"id":       id,
		"url":      result.URL,
		"fallback": result.Address.Fallback,
	})
	f.showResult(id, photo, code, result)
}

func (f *FetchScreen) showResult(id string, photo, code image.Image, result *qr.Result) {
	f.state = stateResult
	f.result = result
	cfg := f.nav.deps.Config

	photoImage := canvas.NewImageFromImage(photo)
	photoImage.FillMode = canvas.ImageFillContain
	photoImage.SetMinSize(fyne.NewSize(float32(cfg.ImageDisplay), float32(cfg.ImageDisplay)))

	codeImage := canvas.NewImageFromImage(code)
	codeImage.FillMode = canvas.ImageFillContain
	codeImage.ScaleMode = canvas.ImageScalePixels
	codeImage.SetMinSize(fyne.NewSize(float32(cfg.QRDisplay), float32(cfg.QRDisplay)))

	f.backButton = widget.NewButton("Back to start", f.showForm)

	f.urlLabel = widget.NewLabelWithStyle("or open this link on your phone:\n"+result.URL, fyne.TextAlignCenter, fyne.TextStyle{})
	f.warning = widget.NewLabelWithStyle(
		"Network address not found: this link only works on this computer.",
		fyne.TextAlignCenter,
		fyne.TextStyle{Italic: true},
	)
	if !result.Address.Fallback {
		f.warning.Hide()
	}

	left := container.NewVBox(photoImage, f.backButton)
	right := container.NewVBox(
		codeImage,
		widget.NewLabelWithStyle("Scan the QR code to download the image", fyne.TextAlignCenter, fyne.TextStyle{}),
		f.urlLabel,
		f.warning,
	)

	columns := kioskLayout.NewFixedColumnLayout([]float32{
		float32(cfg.ImageDisplay) + columnSlack,
		float32(cfg.QRDisplay) + columnSlack,
	}, columnGap)
	f.window.SetContent(container.NewBorder(
		heading("Image found: "+id, 24), nil, nil, nil,
		container.New(columns, left, right),
	))
}

func (f *FetchScreen) handleKey(ev *fyne.KeyEvent) {
	if f.state != stateForm {
		return
	}

	switch ev.Name {
	case fyne.KeyEscape:
		f.nav.Menu()
	case fyne.KeyReturn, fyne.KeyEnter:
		f.Search()
	}
}
