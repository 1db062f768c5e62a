// Package gui shows the score vs. price plot next to one checkbox per category
// in a fyne.io/fyne/v2 window. Every checkbox change goes through the session;
// the window only renders what the session hands back.
package gui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/huangsam/vendorrank/core"
	"github.com/huangsam/vendorrank/internal/contract"
	"github.com/huangsam/vendorrank/internal/plot"
	"github.com/huangsam/vendorrank/schema"
)

// panelWidth is the room reserved for the checkbox panel.
const panelWidth = 160

// Window is the interactive view of one session.
type Window struct {
	session *core.Session
	cfg     *contract.Config
	window  fyne.Window

	plotImage *canvas.Image
	checks    map[string]*widget.Check
	status    *widget.Label
}

// New builds the window and subscribes it to the session.
func New(app fyne.App, session *core.Session, cfg *contract.Config) *Window {
	w := &Window{
		session: session,
		cfg:     cfg,
		window:  app.NewWindow(cfg.PlotTitle),
		checks:  make(map[string]*widget.Check),
		status:  widget.NewLabel(""),
	}

	w.plotImage = canvas.NewImageFromImage(plot.Blank(w.plotSize()))
	w.plotImage.FillMode = canvas.ImageFillContain
	w.plotImage.SetMinSize(fyne.NewSize(float32(cfg.WindowWidth-panelWidth), float32(cfg.WindowHeight-60)))

	panel := container.NewVBox(widget.NewLabelWithStyle("Categories", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, state := range session.Activation().States() {
		name := state.Name
		check := widget.NewCheck(schema.ShortLabel(name, cfg.LabelWidth), func(on bool) {
			w.onCheck(name, on)
		})
		check.Checked = state.Active
		w.checks[name] = check
		panel.Add(check)
	}

	w.window.SetContent(container.NewBorder(nil, w.status, nil, panel, w.plotImage))
	w.window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	session.Subscribe(w.render)
	w.render(session.Result())
	return w
}

// ShowAndRun shows the window and blocks until it is closed.
func (w *Window) ShowAndRun() {
	w.window.ShowAndRun()
}

// Content returns the window content, used by tests.
func (w *Window) Content() fyne.CanvasObject {
	return w.window.Content()
}

// Check returns the checkbox of a category, or nil if unknown.
func (w *Window) Check(name string) *widget.Check {
	return w.checks[name]
}

// Status returns the current status line text.
func (w *Window) Status() string {
	return w.status.Text
}

// Image returns the image currently shown in the plot area.
func (w *Window) Image() image.Image {
	return w.plotImage.Image
}

// onCheck turns a checkbox change into a toggle event. Changes that already
// match the session state are ignored so a toggle is never applied twice.
func (w *Window) onCheck(name string, on bool) {
	if w.session.Activation().IsActive(name) == on {
		return
	}
	if _, err := w.session.Dispatch(core.ToggleCategory{Name: name}); err != nil {
		contract.LogWarn("toggle "+name, err)
	}
}

// render redraws the plot and status line from a session result.
func (w *Window) render(result schema.Result, err error) {
	for _, state := range result.States {
		if check, ok := w.checks[state.Name]; ok && check.Checked != state.Active {
			check.Checked = state.Active
			check.Refresh()
		}
	}

	if err != nil {
		w.status.SetText(fmt.Sprintf("⚠️ %v", err))
		w.setImage(plot.Blank(w.plotSize()))
		return
	}

	img, renderErr := plot.RenderImage(result.Points, w.plotOptions())
	if renderErr != nil {
		w.status.SetText(fmt.Sprintf("⚠️ %v", renderErr))
		w.setImage(plot.Blank(w.plotSize()))
		return
	}
	w.setImage(img)

	leader := ""
	if len(result.Scores.Rows) > 0 {
		leader = result.Scores.Rows[0].Entity
	}
	w.status.SetText(fmt.Sprintf("Leader: %s | Frontier: %d of %d vendors", leader, len(result.Frontier), len(result.Points)))
}

func (w *Window) setImage(img image.Image) {
	w.plotImage.Image = img
	w.plotImage.Refresh()
}

func (w *Window) plotSize() (int, int) {
	return max(w.cfg.WindowWidth-panelWidth, 200), max(w.cfg.WindowHeight-60, 150)
}

func (w *Window) plotOptions() plot.Options {
	width, height := w.plotSize()
	return plot.Options{Title: w.cfg.PlotTitle, Width: width, Height: height}
}
