package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"hitit/internal/core/controller"
	"hitit/internal/core/interval"
	"hitit/internal/core/model"
	"hitit/internal/core/soundbank"
	"hitit/internal/logger"
	"hitit/internal/platform"
	"hitit/internal/storage"
	"hitit/internal/ui/preferences"
	"hitit/internal/ui/timerview"
	"hitit/internal/ui/tray"
	"hitit/resources"
)

const (
	appName = "HITit"
	appID   = "com.hitit.app"
)

var CLI struct {
	Version   kong.VersionFlag
	Debug     bool   `help:"Log debug output to stderr."`
	ConfigDir string `help:"Directory for settings, presets and logs." type:"path"`
	Presets   string `help:"Preset storage, \"preferences\" or \"file\". Overrides settings.yaml."`
}

func main() {
	parser := kong.Parse(&CLI,
		kong.Name("hitit"),
		kong.Description("Interval workout timer with audio cues"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)
	backend := preferences.PresetBackend(CLI.Presets)
	switch backend {
	case "", preferences.PresetsInPreferences, preferences.PresetsInFile:
	default:
		parser.Fatalf("unknown preset storage %q", CLI.Presets)
	}

	configDir := CLI.ConfigDir
	if configDir == "" {
		dir, err := platform.ConfigDir(appName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		configDir = dir
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}

	activate := make(chan struct{}, 1)
	guard, err := platform.AcquireSingleInstance(appName, func() {
		select {
		case activate <- struct{}{}:
		default:
		}
	})
	if err != nil {
		logger.Info("single instance", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(configDir)
	if err != nil {
		logger.Warn("load settings failed, using defaults", "error", err)
	}
	if backend != "" {
		settings.PresetBackend = backend
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustLogo("icon.png"))

	library := storage.NewLibrary(presetStore(fyneApp, settings.PresetBackend, configDir))
	bank := soundbank.New(platform.NewAudioLoader(settings.CueVolume), resources.AudioResolver{})

	var (
		view        *timerview.Window
		trayManager *tray.Manager
		ctrl        *controller.Controller
	)

	ctrl = controller.New(interval.New(), bank, controller.NewTicker(time.Second), controller.Callbacks{
		OnTick: func(remaining int, phase interval.Phase, round, totalRounds int) {
			fyne.Do(func() {
				view.SetPhase(phase)
				view.SetCountdown(remaining, round, totalRounds)
				if trayManager != nil {
					trayManager.SetRemaining(timerview.PhaseTitle(phase), remaining)
				}
			})
		},
		OnPhaseStarted: func(phase interval.Phase, round int) {
			logger.Debug("phase started", "phase", phase, "round", round)
		},
		OnFinished: func() {
			totalRounds := ctrl.State().TotalRounds
			fyne.Do(func() {
				view.SetDone(totalRounds)
				if trayManager != nil {
					trayManager.SetRunning(false)
					trayManager.SetStatus("done")
				}
			})
		},
		OnError: func(message string) {
			fyne.Do(func() {
				view.ShowError(message)
			})
		},
	})

	pause := func() {
		ctrl.Pause()
		if trayManager != nil {
			trayManager.SetPaused(true)
		}
	}
	resume := func() {
		ctrl.Resume()
		if trayManager != nil {
			trayManager.SetPaused(false)
		}
	}
	reset := func() {
		ctrl.Reset()
		view.SetIdle()
		if trayManager != nil {
			trayManager.SetRunning(false)
			trayManager.SetStatus("idle")
		}
	}

	view = timerview.New(fyneApp, timerview.Options{
		Initial:     settings.TimerConfig(),
		WorkoutKeys: resources.AudioKeys(soundbank.SlotWorkout),
		RestKeys:    resources.AudioKeys(soundbank.SlotRest),
	}, timerview.Callbacks{
		OnStart: func(config model.TimerConfig) {
			if err := ctrl.Start(config); err != nil {
				return
			}
			if trayManager != nil {
				trayManager.SetRunning(true)
			}
			settings = settings.WithLastUsed(config)
			if err := storage.SaveSettings(configDir, settings); err != nil {
				logger.Warn("save settings failed", "error", err)
			}
		},
		OnPause:  pause,
		OnResume: resume,
		OnReset:  reset,
		OnSavePreset: func(preset model.Preset) error {
			if err := library.Add(preset); err != nil {
				logger.Error("save preset failed", "name", preset.Name, "error", err)
				return err
			}
			view.SetPresets(library.List())
			return nil
		},
		OnDeletePreset: func(index int) error {
			if err := library.Remove(index); err != nil {
				logger.Error("delete preset failed", "index", index, "error", err)
				return err
			}
			view.SetPresets(library.List())
			return nil
		},
	})
	view.SetPresets(library.List())
	view.Window().SetMaster()

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(resources.MustLogo("icon.png"))
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: view.Show,
			OnTogglePause: func() {
				if ctrl.Paused() {
					resume()
				} else {
					pause()
				}
			},
			OnReset: reset,
			OnQuit:  fyneApp.Quit,
		})
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	go func() {
		for range activate {
			fyne.Do(view.Show)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ctrl.Run(ctx)
	}()

	view.Show()
	fyneApp.Run()

	cancel()
	<-stopped
	logger.Info("hitit stopped")
}

func presetStore(fyneApp fyne.App, backend preferences.PresetBackend, configDir string) storage.PresetStore {
	if backend == preferences.PresetsInFile {
		path := storage.PresetsPath(configDir)
		logger.Debug("presets stored in file", "path", path)
		return storage.NewFileStore(path)
	}
	return storage.NewPreferencesStore(fyneApp.Preferences())
}
