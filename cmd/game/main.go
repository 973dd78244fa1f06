package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/rockman/internal/application/game"
	"github.com/younwookim/rockman/internal/application/replay"
	"github.com/younwookim/rockman/internal/application/scene/playing"
	"github.com/younwookim/rockman/internal/application/system"
	"github.com/younwookim/rockman/internal/infrastructure/audio"
	"github.com/younwookim/rockman/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load config from this directory instead of the embedded defaults")
	watchFlag := flag.Bool("watch", false, "Reload the config directory when its files change (requires -config)")
	recordFlag := flag.Bool("record", false, "Record input for replay")
	recordPath := flag.String("record-file", "", "Replay file to write (default: replay_<time>.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded replay file")
	muteFlag := flag.Bool("mute", false, "Start with sound muted (toggle with M)")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := playing.Options{
		ConfigName: configName(*configDir),
		Record:     *recordFlag || *recordPath != "",
		RecordPath: *recordPath,
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Config != opts.ConfigName {
			log.Printf("Replay was recorded with config %q, running with %q", data.Config, opts.ConfigName)
		}
		opts.Replay = data
		opts.Record = false
	}

	sound := audio.NewSoundManager()
	sound.SetMuted(*muteFlag)
	audioReady := true
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v", err)
		audioReady = false
	} else {
		opts.Effects = []system.Effects{sound}
	}

	scene := playing.New(cfg, opts)
	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(cfg.Display.TickDuration())
	if audioReady {
		g.AddHook(muteHook(sound, *muteFlag, func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyM)
		}))
	}

	if *watchFlag {
		switch {
		case *configDir == "":
			log.Printf("-watch needs -config, not watching the embedded config")
		case opts.Replay != nil:
			log.Printf("Config reload disabled during replay")
		default:
			watcher, err := config.NewWatcher(*configDir)
			if err != nil {
				log.Fatalf("Failed to watch config: %v", err)
			}
			defer func() { _ = watcher.Close() }()
			g.AddHook(reloadHook(watcher, loader, scene.ApplyConfig))
			log.Printf("Watching %s for config changes", *configDir)
		}
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Charge Shot")
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)
	g.Close()
	sound.Cleanup()
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// newLoader returns a loader for dir, or for the embedded defaults when dir
// is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func configName(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}

// changePoller is the part of config.Watcher the reload hook needs
type changePoller interface {
	Poll() (string, bool)
}

// reloadHook reloads the config after a file change. A config that fails to
// load is reported and the running one is kept.
func reloadHook(w changePoller, loader *config.Loader, apply func(*config.GameConfig)) game.Hook {
	return func() error {
		name, changed := w.Poll()
		if !changed {
			return nil
		}
		cfg, err := loader.LoadAll()
		if err != nil {
			log.Printf("Config reload failed (%s): %v", name, err)
			return nil
		}
		apply(cfg)
		log.Printf("Config reloaded: %s", name)
		return nil
	}
}

// muter is the part of audio.SoundManager the mute key needs
type muter interface {
	SetMuted(muted bool)
}

// muteHook flips the mute state each time pressed reports a key press
func muteHook(m muter, muted bool, pressed func() bool) game.Hook {
	return func() error {
		if !pressed() {
			return nil
		}
		muted = !muted
		m.SetMuted(muted)
		log.Printf("Sound muted: %v", muted)
		return nil
	}
}
