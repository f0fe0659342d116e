package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/gui"
	"github.com/plus3/blockfall/settings"
	"github.com/plus3/blockfall/term"
)

const appName = "blockfall"

func main() {
	log.SetPrefix("blockfall: ")

	configPath := flag.String("config", "", "Path to a YAML config file.")
	ui := flag.String("ui", "", `Front end, "gui" or "term".`)
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence. 0 picks a random one.")
	debug := flag.Bool("debug", false, "Show the ImGui debug windows (gui only).")
	noSound := flag.Bool("no-sound", false, "Do not open the audio device.")
	flag.Parse()

	store := settings.OpenStore(appName)
	cfg, err := loadConfig(store, *configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ui":
			cfg.UI = *ui
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		case "no-sound":
			cfg.Sound.Enabled = !*noSound
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config:\n%v", err)
	}

	cues := audio.NewCues(cfg.Sound.Enabled, cfg.Sound.Volume)
	if !*noSound {
		if err := cues.Init(); err != nil {
			log.Printf("[Audio] Warning: sound disabled: %v", err)
		}
	}
	defer cues.Close()

	switch cfg.UI {
	case settings.UITerminal:
		err = runTerm(cfg, cues)
	default:
		err = gui.Run(gui.Options{Config: cfg, Store: store, Cues: cues})
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// loadConfig applies, in order, stored preferences, the config file and
// the environment over the defaults.
func loadConfig(store *settings.Store, path string) (settings.Config, error) {
	cfg := settings.Default()

	prefs, ok, err := store.Load()
	if err != nil {
		log.Printf("[Settings] Warning: ignoring stored preferences: %v", err)
	} else if ok {
		cfg.ApplyPreferences(prefs)
	}

	if path != "" {
		if cfg, err = settings.Load(path, cfg); err != nil {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runTerm plays in the terminal. Log output is held back until the screen
// is restored.
func runTerm(cfg settings.Config, cues *audio.Cues) error {
	var held bytes.Buffer
	log.SetOutput(&held)
	defer func() {
		log.SetOutput(os.Stderr)
		os.Stderr.Write(held.Bytes())
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return term.Run(ctx, screen, cfg, cues)
}
