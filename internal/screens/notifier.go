package screens

import (
	"qr-kiosk/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Notifier surfaces a failure to the user.
type Notifier interface {
	NotifyError(title string, err error)
}

type DialogNotifier struct {
	window fyne.Window
	logger logger.Logger
}

func NewDialogNotifier(window fyne.Window, log logger.Logger) *DialogNotifier {
	return &DialogNotifier{window: window, logger: log}
}

func (d *DialogNotifier) NotifyError(title string, err error) {
	d.logger.Debug("Notifier", "showing error dialog", map[string]interface{}{
		"title": title,
		"error": err.Error(),
	})

	dlg := dialog.NewError(err, d.window)
	dlg.Show()
}
