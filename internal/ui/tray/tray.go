package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomotimer/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnToggleRun   func()
	OnReset       func()
	OnSelectMode  func(model.Mode)
	OnToggleSound func(bool)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app          desktop.App
	statusItem   *fyne.MenuItem
	showItem     *fyne.MenuItem
	runItem      *fyne.MenuItem
	resetItem    *fyne.MenuItem
	modeItems    map[model.Mode]*fyne.MenuItem
	soundItem    *fyne.MenuItem
	prefsItem    *fyne.MenuItem
	quitItem     *fyne.MenuItem
	callbacks    Callbacks
	soundEnabled bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		modeItems: make(map[model.Mode]*fyne.MenuItem),
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShowTimer != nil {
			manager.callbacks.OnShowTimer()
		}
	})

	manager.runItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleRun != nil {
			manager.callbacks.OnToggleRun()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	for _, mode := range model.Modes() {
		selected := mode
		item := fyne.NewMenuItem(mode.Label(), func() {
			if manager.callbacks.OnSelectMode != nil {
				manager.callbacks.OnSelectMode(selected)
			}
		})
		manager.modeItems[mode] = item
	}
	manager.modeItems[model.ModeFocus].Checked = true

	manager.soundItem = fyne.NewMenuItem("Completion sound", func() {
		manager.SetSoundEnabled(!manager.soundEnabled)
		if manager.callbacks.OnToggleSound != nil {
			manager.callbacks.OnToggleSound(manager.soundEnabled)
		}
	})

	manager.prefsItem = fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	app.SetSystemTrayMenu(manager.buildMenu())

	return manager
}

// SetStatus updates the status line at the top of the menu.
func (manager *Manager) SetStatus(status string) {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetRunning flips the start item label.
func (manager *Manager) SetRunning(running bool) {
	if running {
		manager.runItem.Label = "Pause"
	} else {
		manager.runItem.Label = "Start"
	}
	manager.refreshMenu()
}

// SetMode moves the check mark to the active mode.
func (manager *Manager) SetMode(active model.Mode) {
	for mode, item := range manager.modeItems {
		item.Checked = mode == active
	}
	manager.refreshMenu()
}

// SetSoundEnabled updates the sound toggle check mark.
func (manager *Manager) SetSoundEnabled(enabled bool) {
	manager.soundEnabled = enabled
	manager.soundItem.Checked = enabled
	manager.refreshMenu()
}

// SetIcon swaps the tray icon.
func (manager *Manager) SetIcon(resource fyne.Resource) {
	if manager.app != nil {
		manager.app.SetSystemTrayIcon(resource)
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	items := []*fyne.MenuItem{
		manager.statusItem,
		manager.showItem,
		manager.runItem,
		manager.resetItem,
	}
	for _, mode := range model.Modes() {
		items = append(items, manager.modeItems[mode])
	}
	items = append(items, manager.soundItem, manager.prefsItem, manager.quitItem)
	return fyne.NewMenu("Pomotimer", items...)
}

// Rebuilding forces the native tray to pick up label and check changes.
func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}
