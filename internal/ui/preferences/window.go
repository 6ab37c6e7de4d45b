package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomotimer/internal/core/model"
)

const (
	maxMinutes = 90
	maxSeconds = 59
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	focus      *durationRow
	shortBreak *durationRow
	longBreak  *durationRow
	soundCheck *widget.Check
	idleCheck  *widget.Check
	autostart  *widget.Check
}

// durationRow pairs the minutes and seconds entries of one mode.
type durationRow struct {
	minutes *widget.Entry
	seconds *widget.Entry
}

func newDurationRow(value time.Duration) *durationRow {
	row := &durationRow{
		minutes: widget.NewEntry(),
		seconds: widget.NewEntry(),
	}
	row.setDuration(value)
	return row
}

func (row *durationRow) setDuration(value time.Duration) {
	minutes, seconds := splitDuration(value)
	row.minutes.SetText(fmt.Sprintf("%d", minutes))
	row.seconds.SetText(fmt.Sprintf("%d", seconds))
}

// durationInput clamps the raw entry text to the editable ranges. Anything
// unparsable counts as zero; a fully zero row falls back to the mode default
// during normalization.
func (row *durationRow) durationInput() model.DurationInput {
	return model.DurationInput{
		Minutes: parseComponent(row.minutes.Text, maxMinutes),
		Seconds: parseComponent(row.seconds.Text, maxSeconds),
	}
}

func (row *durationRow) container(name string) *fyne.Container {
	return container.NewHBox(
		widget.NewLabel(name),
		row.minutes, widget.NewLabel("min"),
		row.seconds, widget.NewLabel("sec"),
	)
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomotimer Settings")

	focus := newDurationRow(settings.Focus)
	shortBreak := newDurationRow(settings.ShortBreak)
	longBreak := newDurationRow(settings.LongBreak)

	soundCheck := widget.NewCheck("Play sound when a session ends", nil)
	soundCheck.SetChecked(settings.SoundEnabled)

	idleCheck := widget.NewCheck("Pause focus when I step away", nil)
	idleCheck.SetChecked(settings.IdlePause)

	autostart := widget.NewCheck("Start Pomotimer at login", nil)
	autostart.SetChecked(settings.Autostart)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Session lengths", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		focus.container(model.ModeFocus.Label()),
		shortBreak.container(model.ModeShortBreak.Label()),
		longBreak.container(model.ModeLongBreak.Label()),
		widget.NewLabelWithStyle("Behavior", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		soundCheck,
		idleCheck,
		autostart,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 380))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		focus:      focus,
		shortBreak: shortBreak,
		longBreak:  longBreak,
		soundCheck: soundCheck,
		idleCheck:  idleCheck,
		autostart:  autostart,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.focus.setDuration(settings.Focus)
	prefs.shortBreak.setDuration(settings.ShortBreak)
	prefs.longBreak.setDuration(settings.LongBreak)
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.idleCheck.SetChecked(settings.IdlePause)
	prefs.autostart.SetChecked(settings.Autostart)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	durations := model.ConfigInput{
		Focus:      prefs.focus.durationInput(),
		ShortBreak: prefs.shortBreak.durationInput(),
		LongBreak:  prefs.longBreak.durationInput(),
	}.DurationConfig()

	settings.Focus = durations.Focus
	settings.ShortBreak = durations.ShortBreak
	settings.LongBreak = durations.LongBreak
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.IdlePause = prefs.idleCheck.Checked
	settings.Autostart = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseComponent(value string, max int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0
	}
	if parsed > max {
		return max
	}
	return parsed
}

func splitDuration(value time.Duration) (minutes, seconds int) {
	if value < 0 {
		value = 0
	}
	return int(value / time.Minute), int(value % time.Minute / time.Second)
}
