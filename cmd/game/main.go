package main

import (
	"embed"
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wizzy/internal/application/controller"
	"github.com/younwookim/wizzy/internal/application/game"
	"github.com/younwookim/wizzy/internal/application/replay"
	"github.com/younwookim/wizzy/internal/application/state"
	"github.com/younwookim/wizzy/internal/application/system"
	"github.com/younwookim/wizzy/internal/infrastructure/anim"
	"github.com/younwookim/wizzy/internal/infrastructure/config"
	"github.com/younwookim/wizzy/internal/infrastructure/draw"
	"github.com/younwookim/wizzy/internal/infrastructure/store"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back recorded input instead of reading devices")
	stateFlag := flag.String("state", "wizzy.state", "Game state file, loaded at start and saved at exit")
	flag.Parse()

	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadDemo()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load persisted state
	stateStore := store.NewFileStore(*stateFlag)
	stateStore.NewState = func() *state.GameState { return state.New(cfg.Tween()) }
	st, exists, err := stateStore.Load()
	if err != nil {
		log.Printf("Failed to load state, starting fresh: %v", err)
		st = state.New(cfg.Tween())
	} else if exists {
		log.Printf("State loaded: %s (screen: %s)", *stateFlag, st.Screen)
	}

	// Input source
	var input game.InputSource = system.NewInputSystem()
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		input = replay.NewReplayer(*data)
		log.Printf("Replaying %s (%d frames)", *replayFlag, len(data.Frames))
	}

	// Wire the frame loop
	anims := anim.NewRegistry(cfg.Clips)
	ctrl := controller.New(cfg.Controller(), func(name string) controller.AnimationHandle {
		return anims.Get(name)
	})
	g := game.New(st, ctrl, input, draw.NewDrawer(anims),
		cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.AddTicker(anims)

	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder()
		g.SetRecorder(recorder)
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Wizzy")
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Printf("Game stopped: %v", runErr)
	}

	if recorder != nil {
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, recorder.FrameCount())
		}
	}

	if err := stateStore.Save(g.State()); err != nil {
		log.Fatalf("Failed to save state: %v", err)
	}
	log.Printf("State saved: %s after %d frames", *stateFlag, g.Frames())
}
