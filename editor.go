package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/tagger/asset"
	"github.com/OpticalFlyer/tagger/config"
)

var blankColor = color.NRGBA{R: 48, G: 48, B: 48, A: 255}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	envPath, _ := cmd.Flags().GetString("env")
	cfg, err := config.LoadWithOptions(config.LoadOptions{ConfigPath: configPath, EnvPath: envPath})
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Selector.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("tag") {
		cfg.Editor.DefaultTag, _ = flags.GetString("tag")
	}
	if flags.Changed("debug") {
		cfg.Editor.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logCloser, err := cfg.SetupLogging()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	var (
		path string
		img  image.Image
	)
	if len(args) == 1 {
		path = args[0]
		if img, err = asset.Load(path); err != nil {
			return err
		}
	} else {
		img = imaging.New(cfg.Window.Width, cfg.Window.Height, blankColor)
	}

	app, err := newTagger(cfg, path, img)
	if err != nil {
		return err
	}

	if path != "" {
		watcher, err := asset.NewWatcher(cfg.WatchDebounce())
		if err != nil {
			log.Printf("Not watching %s: %v", path, err)
		} else {
			defer watcher.Close()
			if err := watcher.Watch(path); err != nil {
				log.Printf("Not watching %s: %v", path, err)
			} else {
				app.watcher = watcher
			}
		}
	}

	title := cfg.Window.Title
	if path != "" {
		title = fmt.Sprintf("%s - %s", title, app.asset.Name)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(title)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		return err
	}
	log.Printf("Closed %s: %d regions, %s", app.asset.Name, len(app.asset.Regions), app.asset.State)
	return nil
}
