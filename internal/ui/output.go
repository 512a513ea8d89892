package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// statusOutput reports one package's progress into the details pane.
// Its methods are called from worker goroutines.
type statusOutput struct {
	ui *UI
	id string
}

func (o statusOutput) Progress(msg string) {
	o.ui.setStatus(o.id, msg+"...")
}

func (o statusOutput) Success(msg string) {
	o.ui.setStatus(o.id, msg)
}

func (o statusOutput) Instruction(msg string) {
	o.ui.setStatus(o.id, msg)
	if o.ui.isClosed() {
		return
	}
	fyne.Do(func() {
		if !o.ui.isClosed() {
			dialog.ShowInformation("Action needed", msg, o.ui.window)
		}
	})
}

// ContinuePrompt blocks the worker until the dialog is dismissed or the
// window is closed.
func (o statusOutput) ContinuePrompt() {
	if o.ui.isClosed() {
		return
	}
	done := make(chan struct{})
	fyne.Do(func() {
		if o.ui.isClosed() {
			return
		}
		d := dialog.NewInformation("Continue", "Press OK when the installer has finished.", o.ui.window)
		d.SetOnClosed(func() { close(done) })
		d.Show()
	})
	select {
	case <-done:
	case <-o.ui.closed:
	}
}
