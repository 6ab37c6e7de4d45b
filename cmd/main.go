package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"pomotimer/internal/core/countdown"
	"pomotimer/internal/core/model"
	"pomotimer/internal/platform"
	"pomotimer/internal/sound"
	"pomotimer/internal/storage"
	"pomotimer/internal/ui/alert"
	"pomotimer/internal/ui/preferences"
	"pomotimer/internal/ui/timerwin"
	"pomotimer/internal/ui/tray"
	"pomotimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pomotimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomotimer.app")
	fyneApp.SetIcon(resources.MustLogo("logo.svg"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("Warning: load settings: %v", err)
	}

	engine := countdown.New(settings.DurationConfig(), countdown.Config{TickInterval: time.Second})
	engine.SetIdleChecker(platform.NewIdleChecker())
	engine.SetIdlePause(settings.IdlePause)

	chime := sound.NewChime(settings.SoundEnabled)
	loginItem := platform.NewLoginItem(appName)

	normalIcon := resources.MustLogo("logo.svg")
	pausedIcon := resources.MustLogo("logo_paused.svg")
	attentionIcon := resources.MustLogo("logo_attention.svg")

	timerWindow := timerwin.New(fyneApp, timerwin.Callbacks{
		OnToggleRun:  engine.ToggleRun,
		OnReset:      engine.Reset,
		OnSelectMode: engine.SelectMode,
	})

	var trayManager *tray.Manager
	flasher := alert.New(alert.DefaultConfig(), func(resource fyne.Resource) {
		if trayManager != nil {
			trayManager.SetIcon(resource)
		}
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		engine.ApplyConfig(settings.DurationConfig())
		engine.SetIdlePause(settings.IdlePause)
		chime.SetEnabled(settings.SoundEnabled)
		trayManager.SetSoundEnabled(settings.SoundEnabled)
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("Warning: save settings: %v", err)
		}
		applyAutostart(loginItem, settings)
	})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnShowTimer:  timerWindow.Show,
		OnToggleRun:  engine.ToggleRun,
		OnReset:      engine.Reset,
		OnSelectMode: engine.SelectMode,
		OnToggleSound: func(enabled bool) {
			settings.SoundEnabled = enabled
			chime.SetEnabled(enabled)
			prefsWindow.UpdateSettings(settings)
			if err := storage.SaveSettings(appName, settings); err != nil {
				log.Printf("Warning: save settings: %v", err)
			}
		},
		OnPreferences: prefsWindow.Show,
		OnQuit: func() {
			flasher.Stop()
			engine.Stop()
			fyneApp.Quit()
		},
	})
	trayManager.SetSoundEnabled(settings.SoundEnabled)
	desktopApp.SetSystemTrayIcon(normalIcon)

	// Refresh the login entry in case the binary moved since last run.
	if settings.Autostart {
		applyAutostart(loginItem, settings)
	}

	events := engine.Subscribe(16)
	timerWindow.ApplySnapshot(engine.Snapshot())
	trayManager.SetStatus(statusLine(engine.Snapshot(), 0))

	go func() {
		sessionTally := 0
		for event := range events {
			snapshot := engine.Snapshot()
			switch event.Type {
			case countdown.EventStateChange:
				flasher.Stop()
				timerWindow.ApplySnapshot(snapshot)
				trayManager.SetStatus(statusLine(snapshot, sessionTally))
				trayManager.SetRunning(snapshot.Running)
				trayManager.SetMode(snapshot.Mode)
				if snapshot.State == countdown.StatePaused {
					trayManager.SetIcon(pausedIcon)
				} else {
					trayManager.SetIcon(normalIcon)
				}
			case countdown.EventProgress:
				timerWindow.ApplySnapshot(snapshot)
				trayManager.SetStatus(statusLine(snapshot, sessionTally))
			case countdown.EventSessionComplete:
				chime.Play()
				if event.Mode == model.ModeFocus {
					sessionTally++
					timerWindow.SetSessionTally(sessionTally)
				}
				timerWindow.ApplySnapshot(snapshot)
				timerWindow.RequestAttention()
				trayManager.SetStatus(statusLine(snapshot, sessionTally))
				trayManager.SetRunning(false)
				flasher.Start(context.Background(), attentionIcon, normalIcon)
			case countdown.EventIdlePause:
				timerWindow.ApplySnapshot(snapshot)
				timerWindow.SetStatus("Paused while you were away")
				trayManager.SetStatus("Paused while you were away")
				trayManager.SetRunning(false)
				trayManager.SetIcon(pausedIcon)
			case countdown.EventIdleError:
				log.Printf("Warning: idle detection disabled: %s", event.Message)
			}
		}
	}()

	timerWindow.Show()
	fyneApp.Run()
}

func statusLine(snapshot countdown.Snapshot, tally int) string {
	var line string
	switch snapshot.State {
	case countdown.StateRunning:
		line = fmt.Sprintf("%s %s", snapshot.Mode.Label(), formatRemaining(snapshot.Remaining))
	case countdown.StatePaused:
		line = fmt.Sprintf("%s paused at %s", snapshot.Mode.Label(), formatRemaining(snapshot.Remaining))
	case countdown.StateFinished:
		line = fmt.Sprintf("%s finished", snapshot.Mode.Label())
	default:
		line = fmt.Sprintf("%s ready", snapshot.Mode.Label())
	}
	if tally > 0 {
		line = fmt.Sprintf("%s, %d focus done", line, tally)
	}
	return line
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func applyAutostart(item *platform.LoginItem, settings preferences.Settings) {
	if !settings.Autostart {
		if err := item.Disable(); err != nil {
			log.Printf("Warning: %v", err)
		}
		return
	}

	execPath, err := os.Executable()
	if err != nil {
		log.Printf("Warning: resolve executable path: %v", err)
		return
	}
	if err := item.Enable(execPath); err != nil {
		log.Printf("Warning: %v", err)
	}
}
