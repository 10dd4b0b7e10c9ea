package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/gridfield/audio"
	"github.com/lixenwraith/gridfield/config"
	"github.com/lixenwraith/gridfield/engine"
	"github.com/lixenwraith/gridfield/game"
	"github.com/lixenwraith/gridfield/render"
	"github.com/lixenwraith/gridfield/visual"
)

const frameInterval = 16 * time.Millisecond

var (
	configFlag = flag.String("config", "", "HCL settings file layered over the built-in codon table")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/"+logFileName)
	levelFlag  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 derives one from the clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	codonFlag  = flag.String("codon", "", "Comma separated codons to run headless; prints the settled field")
)

func main() {
	flag.Parse()

	logFile, logger := setupLogging(*debugFlag, *levelFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	settings, err := config.Load(*configFlag, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	logger.Info("starting", "seed", seed, "config", *configFlag)

	if *codonFlag != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runHeadless(settings, rng, logger, parseCodons(*codonFlag), os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	audioCfg := audio.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg, logger)
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRIDFIELD CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	layer := visual.NewLayer()
	clock := engine.NewPausableClock(nil)
	scene, err := game.NewScene(settings, layer, clock, rng, logger, player)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	extentW, extentH := scene.Extent()
	renderer := render.NewTerminalRenderer(screen, layer, extentW, extentH)
	scene.Start()

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(scene, clock, ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				w, h := screen.Size()
				renderer.UpdateDimensions(w, h, extentW, extentH)
			}

		case <-frameTicker.C:
			scene.Tick(clock.Now())
			hud := scene.HUD()
			if clock.IsPaused() {
				hud.Message = "paused, p to resume"
				hud.Error = false
			}
			renderer.RenderFrame(hud)
			if scene.Done() {
				logger.Info("exit", "status", scene.Stats().Format(""))
				return
			}
		}
	}
}

// handleKey routes one key press; false quits immediately
func handleKey(scene *game.Scene, clock *engine.PausableClock, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		scene.ClearBuffer()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		scene.Backspace()
	case tcell.KeyRune:
		if clock.IsPaused() && ev.Rune() != 'p' {
			return true
		}
		if scene.HandleKey(ev.Rune()) {
			return true
		}
		switch ev.Rune() {
		case 'p':
			clock.Toggle()
		case 'q':
			// plays the exit sequence; the loop ends once the scene is done
			scene.Stop()
		}
	}
	return true
}
