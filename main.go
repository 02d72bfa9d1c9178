package main

import (
	"context"
	"errors"
	"flag"
	"math"
	"os"
	"os/signal"

	"github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/host"
	"github.com/automoto/testarossa/host/ebitenhost"
	"github.com/automoto/testarossa/logging"
	"github.com/automoto/testarossa/scenes"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	env   *ebitenhost.Host
	scene Scene
}

func NewGame(ctx context.Context) *Game {
	env := ebitenhost.New()
	return &Game{
		env:   env,
		scene: scenes.NewDriveScene(scenes.DriveOptions{Context: ctx, Env: env}),
	}
}

func (g *Game) Update() error {
	g.env.Poll()
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the screen the size of the window so the viewport follows it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.env.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	headless := flag.Bool("headless", false, "run without a window, tracing the car through the log")
	frames := flag.Uint64("frames", 600, "headless: frames to run before exiting (0 = until interrupted)")
	hz := flag.Int("hz", 60, "headless: frames per second")
	flag.BoolVar(&config.Debug.ShowStats, "debug", config.Debug.ShowStats, "show the stats overlay and log for development")
	flag.IntVar(&config.C.Width, "width", config.C.Width, "initial window width")
	flag.IntVar(&config.C.Height, "height", config.C.Height, "initial window height")
	flag.Parse()
	if config.C.Width <= 0 || config.C.Height <= 0 {
		os.Stderr.WriteString("width and height must be positive\n")
		os.Exit(2)
	}

	config.Debug.DevelopmentLog = config.Debug.ShowStats

	logger, err := logging.New(config.Debug.DevelopmentLog)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger = logger.With(zap.String("session", uuid.NewString()))
	logging.Set(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		if err := runHeadless(ctx, *frames, *hz); err != nil {
			logger.Error("headless run failed", zap.Error(err))
			_ = logger.Sync()
			os.Exit(1)
		}
		return
	}

	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", zap.Int("width", config.C.Width), zap.Int("height", config.C.Height))
	if err := ebiten.RunGame(NewGame(ctx)); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}

// runHeadless drives the scene from a ticker with a pointer sweeping across
// the window.
func runHeadless(ctx context.Context, frames uint64, hz int) error {
	size := host.Size{Width: config.C.Width, Height: config.C.Height}
	env := host.NewHeadless(size, size, false)
	scene := scenes.NewDriveScene(scenes.DriveOptions{Context: ctx, Env: env, Headless: true})

	if hz <= 0 {
		hz = 60
	}
	var n int
	frame := func() error {
		// one full sweep every four seconds
		phase := 2 * math.Pi * float64(n) / float64(4*hz)
		env.MovePointer(float64(size.Width) / 2 * (1 + math.Sin(phase)))
		n++

		env.Poll()
		scene.Update()
		scene.Draw(nil)
		if scene.Phase() == config.PhaseFailed {
			return scene.Err()
		}
		return nil
	}

	err := host.RunHeadless(ctx, frame, host.HeadlessConfig{Hz: hz, Frames: frames})
	if errors.Is(err, context.Canceled) {
		return scene.Err()
	}
	return err
}
