package ui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/log"
	"worbots-setup/internal/logger"
	"worbots-setup/internal/worker"
)

const (
	AppID   = "org.worbots.setup"
	AppName = "WorBots Setup"

	WindowWidth  = 900
	WindowHeight = 560
	iconSize     = 32
)

// UI is the main window. Fields other than reg, env and pool are owned by
// the fyne goroutine.
type UI struct {
	reg  *catalog.Registry
	env  catalog.Env
	pool *worker.Pool

	window   fyne.Window
	packages []catalog.Descriptor
	current  int

	// Keyed by package id.
	status map[string]string
	busy   map[string]bool
	// Job id to package id.
	jobs map[string]string

	// closed is closed once the window is gone. Workers still running
	// must not wait on widgets after that.
	closed    chan struct{}
	closeOnce sync.Once

	list        *widget.List
	icon        *canvas.Image
	name        *widget.Label
	description *widget.Label
	note        *widget.Label
	includes    *widget.Label
	installed   *widget.Label
	statusLabel *widget.Label
	installBtn  *widget.Button
	launchBtn   *widget.Button
}

// Run opens the window and blocks until it is closed. Queued actions are
// allowed to finish before Run returns.
func Run(ctx context.Context, reg *catalog.Registry, env catalog.Env, workers int) error {
	a := app.NewWithID(AppID)
	w := a.NewWindow(AppName)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	pool := worker.New(ctx, workers)
	ui := &UI{
		reg:      reg,
		env:      env,
		pool:     pool,
		window:   w,
		packages: reg.All(),
		current:  -1,
		status:   make(map[string]string),
		busy:     make(map[string]bool),
		jobs:     make(map[string]string),
		closed:   make(chan struct{}),
	}
	ui.build()
	w.SetOnClosed(ui.markClosed)

	go func() {
		for res := range pool.Results() {
			res := res
			fyne.Do(func() { ui.finish(res) })
		}
	}()

	log.G(ctx).WithField("packages", len(ui.packages)).Info("window opened")
	w.ShowAndRun()
	ui.markClosed()
	pool.Close()
	log.G(ctx).Info("window closed")
	return nil
}

func (ui *UI) build() {
	ui.list = widget.NewList(
		func() int { return len(ui.packages) },
		func() fyne.CanvasObject {
			img := canvas.NewImageFromResource(nil)
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(iconSize, iconSize))
			return container.NewHBox(img, widget.NewLabel(""))
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			d := ui.packages[i]
			row := obj.(*fyne.Container)
			img := row.Objects[0].(*canvas.Image)
			img.Resource = iconResource(d)
			img.Refresh()
			row.Objects[1].(*widget.Label).SetText(d.DisplayName)
		},
	)
	ui.list.OnSelected = func(i widget.ListItemID) {
		ui.current = i
		ui.refreshDetails()
	}

	ui.icon = canvas.NewImageFromResource(nil)
	ui.icon.FillMode = canvas.ImageFillContain
	ui.icon.SetMinSize(fyne.NewSize(64, 64))
	ui.name = widget.NewLabelWithStyle("Select a package", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.description = widget.NewLabel("")
	ui.description.Wrapping = fyne.TextWrapWord
	ui.note = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	ui.includes = widget.NewLabel("")
	ui.includes.Wrapping = fyne.TextWrapWord
	ui.installed = widget.NewLabel("")
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.installBtn = widget.NewButtonWithIcon("Install", theme.DownloadIcon(), func() { ui.submit("install") })
	ui.launchBtn = widget.NewButtonWithIcon("Launch", theme.MediaPlayIcon(), func() { ui.submit("launch") })
	ui.installBtn.Hide()
	ui.launchBtn.Hide()

	pane := container.NewVBox(
		container.NewHBox(ui.icon, ui.name),
		ui.description,
		ui.note,
		ui.includes,
		ui.installed,
		container.NewHBox(ui.installBtn, ui.launchBtn),
		widget.NewSeparator(),
		ui.statusLabel,
	)

	split := container.NewHSplit(ui.list, container.NewPadded(pane))
	split.Offset = 0.35
	ui.window.SetContent(split)
}

func (ui *UI) selected() (catalog.Descriptor, bool) {
	if ui.current < 0 || ui.current >= len(ui.packages) {
		return catalog.Descriptor{}, false
	}
	return ui.packages[ui.current], true
}

func (ui *UI) refreshDetails() {
	d, ok := ui.selected()
	if !ok {
		return
	}
	det := describe(ui.reg, d, ui.env.State)

	ui.icon.Resource = iconResource(d)
	ui.icon.Refresh()
	ui.name.SetText(det.Name)
	ui.description.SetText(det.Description)
	ui.note.SetText(det.Note)
	ui.includes.SetText(det.Includes)
	ui.installed.SetText(det.Installed)
	ui.statusLabel.SetText(ui.status[d.ID])

	showButton(ui.installBtn, det.CanInstall, ui.busy[d.ID])
	showButton(ui.launchBtn, det.CanLaunch, ui.busy[d.ID])
}

func showButton(b *widget.Button, visible, busy bool) {
	if !visible {
		b.Hide()
		return
	}
	b.Show()
	if busy {
		b.Disable()
	} else {
		b.Enable()
	}
}

// submit queues an action for the selected package. The package's buttons
// stay disabled until its result comes back.
func (ui *UI) submit(action string) {
	d, ok := ui.selected()
	if !ok || ui.busy[d.ID] {
		return
	}

	env := ui.env
	env.Out = statusOutput{ui: ui, id: d.ID}
	id := d.ID
	run := func(ctx context.Context) error {
		if action == "install" {
			return ui.reg.Install(ctx, id, &env)
		}
		return ui.reg.Launch(ctx, id, &env)
	}

	jobID, err := ui.pool.Submit(action+" "+id, run)
	if err != nil {
		ui.status[id] = err.Error()
		ui.refreshDetails()
		return
	}
	ui.jobs[jobID] = id
	ui.busy[id] = true
	ui.status[id] = "Waiting for other actions to finish..."
	ui.refreshDetails()
}

// finish applies a job result. Runs on the fyne goroutine.
func (ui *UI) finish(res worker.Result) {
	if ui.isClosed() {
		return
	}
	id, ok := ui.jobs[res.JobID]
	if !ok {
		return
	}
	delete(ui.jobs, res.JobID)
	delete(ui.busy, id)
	if res.Err != nil {
		logger.Error("[ERROR] %s failed: %v\n", res.Label, res.Err)
		ui.status[id] = "Failed: " + res.Err.Error()
	}
	if d, ok := ui.selected(); ok && d.ID == id {
		ui.refreshDetails()
	}
}

func (ui *UI) markClosed() {
	ui.closeOnce.Do(func() { close(ui.closed) })
}

func (ui *UI) isClosed() bool {
	select {
	case <-ui.closed:
		return true
	default:
		return false
	}
}

// setStatus may be called from any goroutine.
func (ui *UI) setStatus(id, msg string) {
	if ui.isClosed() {
		return
	}
	fyne.Do(func() {
		if ui.isClosed() {
			return
		}
		ui.status[id] = msg
		if d, ok := ui.selected(); ok && d.ID == id {
			ui.statusLabel.SetText(msg)
		}
	})
}

func iconResource(d catalog.Descriptor) fyne.Resource {
	if len(d.Icon) == 0 {
		return theme.ComputerIcon()
	}
	return fyne.NewStaticResource(d.ID+".png", d.Icon)
}
