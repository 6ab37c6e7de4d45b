// Package timerwin renders the main countdown window.
package timerwin

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pomotimer/internal/core/countdown"
	"pomotimer/internal/core/model"
)

// Callbacks wire window controls to the countdown engine.
type Callbacks struct {
	OnToggleRun  func()
	OnReset      func()
	OnSelectMode func(model.Mode)
}

// Window manages the countdown UI.
type Window struct {
	window      fyne.Window
	callbacks   Callbacks
	timeLabel   *canvas.Text
	statusLabel *widget.Label
	tallyLabel  *widget.Label
	modePicker  *widget.RadioGroup
	progress    *widget.ProgressBar
	startButton *widget.Button
	resetButton *widget.Button

	// SetSelected on the mode picker fires its change handler; this flag
	// keeps snapshot-driven updates from bouncing back into the engine.
	suppressModeEvent bool
}

// New creates the countdown window. Closing it hides the window; the app
// keeps running from the tray.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomotimer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timeLabel := canvas.NewText("--:--", color.NRGBA{R: 217, G: 82, B: 60, A: 255})
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = 52

	modeLabels := make([]string, 0, len(model.Modes()))
	for _, mode := range model.Modes() {
		modeLabels = append(modeLabels, mode.Label())
	}

	win := &Window{
		window:      window,
		callbacks:   callbacks,
		timeLabel:   timeLabel,
		statusLabel: widget.NewLabel("Ready"),
		tallyLabel:  widget.NewLabel(tallyText(0)),
		progress:    widget.NewProgressBar(),
	}

	win.modePicker = widget.NewRadioGroup(modeLabels, func(selected string) {
		if win.suppressModeEvent {
			return
		}
		mode, ok := modeByLabel(selected)
		if !ok {
			return
		}
		if win.callbacks.OnSelectMode != nil {
			win.callbacks.OnSelectMode(mode)
		}
	})
	win.modePicker.Horizontal = true
	win.modePicker.Required = true
	win.suppressModeEvent = true
	win.modePicker.SetSelected(model.ModeFocus.Label())
	win.suppressModeEvent = false

	win.startButton = widget.NewButton("Start", func() {
		if win.callbacks.OnToggleRun != nil {
			win.callbacks.OnToggleRun()
		}
	})
	win.resetButton = widget.NewButton("Reset", func() {
		if win.callbacks.OnReset != nil {
			win.callbacks.OnReset()
		}
	})

	content := container.NewVBox(
		container.NewCenter(win.modePicker),
		container.NewCenter(timeLabel),
		win.progress,
		container.NewGridWithColumns(2, win.startButton, win.resetButton),
		container.NewCenter(win.statusLabel),
		container.NewCenter(win.tallyLabel),
	)

	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 300))
	window.CenterOnScreen()
	window.SetCloseIntercept(window.Hide)

	return win
}

// Show displays the countdown window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// ApplySnapshot renders an engine snapshot. Safe to call from any goroutine.
func (win *Window) ApplySnapshot(snapshot countdown.Snapshot) {
	fyne.Do(func() {
		win.applySnapshotUnsafe(snapshot)
	})
}

// RequestAttention raises the window when a session completes.
func (win *Window) RequestAttention() {
	fyne.Do(func() {
		win.window.Show()
		win.window.RequestFocus()
	})
}

// SetSessionTally updates the completed-sessions line.
func (win *Window) SetSessionTally(count int) {
	fyne.Do(func() {
		win.tallyLabel.SetText(tallyText(count))
	})
}

// SetStatus overrides the status line, for notices outside the
// snapshot-derived texts.
func (win *Window) SetStatus(text string) {
	fyne.Do(func() {
		win.statusLabel.SetText(text)
	})
}

func (win *Window) applySnapshotUnsafe(snapshot countdown.Snapshot) {
	win.timeLabel.Text = formatDuration(snapshot.Remaining)
	win.timeLabel.Refresh()
	win.progress.SetValue(snapshot.Progress)

	win.suppressModeEvent = true
	win.modePicker.SetSelected(snapshot.Mode.Label())
	win.suppressModeEvent = false

	switch {
	case snapshot.Running:
		win.startButton.SetText("Pause")
		win.startButton.Enable()
	case snapshot.State == countdown.StateFinished:
		// A finished session needs a reset or a mode switch first.
		win.startButton.SetText("Start")
		win.startButton.Disable()
	default:
		win.startButton.SetText("Start")
		win.startButton.Enable()
	}

	win.statusLabel.SetText(statusText(snapshot))
}

func statusText(snapshot countdown.Snapshot) string {
	switch snapshot.State {
	case countdown.StateRunning:
		return fmt.Sprintf("%s in progress", snapshot.Mode.Label())
	case countdown.StatePaused:
		return "Paused"
	case countdown.StateFinished:
		if snapshot.Mode == model.ModeFocus {
			return "Focus complete. Time for a break."
		}
		return "Break over. Back to focus."
	default:
		return "Ready"
	}
}

func tallyText(count int) string {
	return fmt.Sprintf("Completed sessions: %d", count)
}

func modeByLabel(label string) (model.Mode, bool) {
	for _, mode := range model.Modes() {
		if mode.Label() == label {
			return mode, true
		}
	}
	return "", false
}

func formatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
