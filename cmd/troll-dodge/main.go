package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/troll-dodge/audio"
	"github.com/lixenwraith/troll-dodge/config"
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/content"
	"github.com/lixenwraith/troll-dodge/engine"
	"github.com/lixenwraith/troll-dodge/events"
	"github.com/lixenwraith/troll-dodge/input"
	"github.com/lixenwraith/troll-dodge/mode"
	"github.com/lixenwraith/troll-dodge/render"
	"github.com/lixenwraith/troll-dodge/systems"
	"golang.org/x/sync/errgroup"
)

var (
	configFlag     = flag.String("config", "", "Path to YAML config file")
	seedFlag       = flag.Int64("seed", 0, "Random seed; 0 uses the config value or the clock")
	debugFlag      = flag.Bool("debug", false, "Write a debug log to the log directory")
	difficultyFlag = flag.String("difficulty", "", "Difficulty: easy, normal, hard")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "troll-dodge: %v\n", err)
		os.Exit(2)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *difficultyFlag != "" {
		cfg.Difficulty = *difficultyFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "troll-dodge: %v\n", err)
			os.Exit(2)
		}
	}

	if logFile := setupLogging(cfg.LogDir, cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "troll-dodge: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnablePaste()
	screen.EnableFocus()
	fini := sync.OnceFunc(screen.Fini)
	defer fini()

	// Panic recovery: restore the terminal before printing the trace
	crash := func(where string, r any) {
		fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mTROLL-DODGE %s CRASHED: %v\x1b[0m\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed=%d difficulty=%s frame=%s", seed, cfg.Difficulty, cfg.FrameInterval)

	ctx := engine.NewGameContext(cfg.PlayArea.Width, cfg.PlayArea.Height,
		engine.NewMonotonicTimeProvider(), engine.NewRand(seed), cfg.DifficultyLevel())
	ctx.Volume = cfg.Audio.Volume

	// Presentation collaborators
	hud := render.NewHUD()
	renderer := render.NewRenderer(screen, hud, ctx.PlayWidth, ctx.PlayHeight)

	sound := audio.NewSoundManager()
	sound.SetVolume(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
		}
	}

	// Tick pipeline, in the order the loop runs them
	driver := engine.NewDriver(ctx)
	driver.AddSystem(systems.NewMoveSystem())
	driver.AddSystem(systems.NewCollisionSystem())
	driver.AddSystem(systems.NewTrollSystem())
	driver.RegisterHandler(hud)
	driver.RegisterHandler(sound)
	if cfg.Debug {
		driver.Router().Observe(func(ev events.GameEvent) {
			log.Printf("frame=%d event=%s", ev.Frame, ev.Type)
		})
	}

	machine := input.NewMachine()
	router := mode.NewRouter(ctx, machine, renderer.PointerToPlay)

	ctx.Message(content.Welcome)
	ctx.EmitScore()
	ctx.EmitLives()
	systems.StartMotivationalTimer(ctx)
	driver.Flush()

	g, gctx := errgroup.WithContext(context.Background())
	gctx, stop := context.WithCancel(gctx)
	defer stop()
	eventChan := make(chan tcell.Event, constants.InputQueueSize)

	// Input polling blocks on the terminal; Fini unblocks it with a nil event
	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case eventChan <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				crash("GAME LOOP", r)
			}
		}()
		defer stop()
		defer fini()

		frameTicker := time.NewTicker(cfg.FrameInterval)
		defer frameTicker.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil

			case ev := <-eventChan:
				intent := machine.Process(ev)
				if intent != nil && intent.Type == input.IntentResize {
					renderer.Resize()
					screen.Sync()
				}
				if !router.Handle(intent) {
					log.Printf("quit requested")
					return nil
				}
				driver.Flush()

			case <-frameTicker.C:
				driver.Tick()
				renderer.RenderFrame(ctx)
			}
		}
	})

	return g.Wait()
}
