package scenes

import (
	"context"
	"sync"

	"github.com/automoto/testarossa/assets"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/fonts"
	"github.com/automoto/testarossa/host"
	"github.com/automoto/testarossa/logging"
	"github.com/automoto/testarossa/systems"
	"github.com/automoto/testarossa/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// DriveOptions configures a DriveScene.
type DriveOptions struct {
	Context context.Context
	Env     host.Environment
	// Load fetches the car model. Defaults to the embedded config.Scene.Model.
	Load assets.LoadFunc
	// Headless skips GPU resources and traces the car through the logger
	// instead of drawing.
	Headless bool
	// Renderers replaces the default renderers when set.
	Renderers []ecs.Renderer
}

// DriveScene is the car on the street. It stays Idle until the model has
// loaded, then runs the motion filter once per frame.
type DriveScene struct {
	ecs     *ecs.ECS
	opts    DriveOptions
	phase   cfg.PhaseID
	load    *assets.Future
	car     *donburi.Entry
	overlay *donburi.Entry
	err     error
	once    sync.Once
}

func NewDriveScene(opts DriveOptions) *DriveScene {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Load == nil {
		opts.Load = assets.Named(cfg.Scene.Model)
	}
	return &DriveScene{opts: opts}
}

func (ds *DriveScene) Update() {
	ds.once.Do(ds.configure)

	switch ds.phase {
	case cfg.PhaseIdle:
		model, done, err := ds.load.Poll()
		if !done {
			systems.UpdateOverlay(ds.ecs)
			return
		}
		if err != nil {
			ds.fail(err)
			return
		}
		ds.start(model)
		// the first step belongs to the frame that enters Running
		ds.ecs.Update()
	case cfg.PhaseRunning:
		ds.ecs.Update()
	}
}

func (ds *DriveScene) Draw(screen *ebiten.Image) {
	if ds.ecs == nil {
		return
	}
	if ds.phase == cfg.PhaseRunning {
		ds.ecs.Draw(screen)
		return
	}
	if screen == nil {
		return
	}
	screen.Fill(cfg.Scene.ClearColor)
	systems.DrawOverlay(ds.ecs, screen)
}

// Phase reports where the scene is in its lifecycle.
func (ds *DriveScene) Phase() cfg.PhaseID { return ds.phase }

// Err is the load failure that put the scene in PhaseFailed.
func (ds *DriveScene) Err() error { return ds.err }

func (ds *DriveScene) ECS() *ecs.ECS { return ds.ecs }

// Car returns the car entry, nil before the first Update.
func (ds *DriveScene) Car() *donburi.Entry { return ds.car }

func (ds *DriveScene) configure() {
	log := logging.L().Named("scene")

	ecs := ecs.NewECS(donburi.NewWorld())
	ds.ecs = ecs

	factory.CreateViewport(ecs)
	factory.CreateCamera(ecs)
	factory.CreateStreet(ecs, cfg.Grid.Size, cfg.Grid.Divisions)
	ds.car = factory.CreateCar(ecs)
	ds.overlay = factory.CreateLoadingOverlay(ecs)

	systems.FitViewport(ecs, ds.opts.Env)
	systems.WatchViewport(ecs, ds.opts.Env)

	if !ds.opts.Headless {
		if err := assets.LoadShaders(); err != nil {
			log.Warn("post shader unavailable, composing without it", zap.Error(err))
		}
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Warn("fonts unavailable, overlays disabled", zap.Error(err))
	}

	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdateStreet)
	ecs.AddSystem(systems.UpdateFade)

	switch {
	case len(ds.opts.Renderers) > 0:
		for _, r := range ds.opts.Renderers {
			ecs.AddRenderer(cfg.Default, r)
		}
	case ds.opts.Headless:
		ecs.AddRenderer(cfg.Default, systems.TraceFrame)
	default:
		ecs.AddRenderer(cfg.Default, systems.DrawScene)
		ecs.AddRenderer(cfg.HUD, systems.DrawStats)
	}

	ds.phase = cfg.PhaseIdle
	ds.load = assets.LoadAsync(ds.opts.Context, ds.opts.Load)
	log.Info("scene configured", zap.Stringer("phase", ds.phase))
}

func (ds *DriveScene) start(model *assets.Model) {
	factory.AttachModel(ds.car, model, cfg.Scene.CarColor)
	mode := systems.AttachInput(ds.ecs, ds.opts.Env)

	if ds.overlay != nil && ds.overlay.Valid() {
		ds.overlay.Remove()
	}
	ds.overlay = nil
	ds.phase = cfg.PhaseRunning

	logging.L().Named("scene").Info("model ready",
		zap.String("model", model.Name),
		zap.Int("segments", len(model.Mesh.Segments)),
		zap.Stringer("input", mode),
		zap.Stringer("phase", ds.phase))
}

func (ds *DriveScene) fail(err error) {
	ds.err = err
	ds.phase = cfg.PhaseFailed
	systems.FailOverlay(ds.ecs, cfg.Overlay.FailureText)
	logging.L().Named("scene").Error("model load failed", zap.Error(err))
}
