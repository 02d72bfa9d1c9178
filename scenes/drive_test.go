package scenes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/automoto/testarossa/assets"
	"github.com/automoto/testarossa/components"
	cfg "github.com/automoto/testarossa/config"
	"github.com/automoto/testarossa/gamemath"
	"github.com/automoto/testarossa/host"
	"github.com/automoto/testarossa/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

var desktop = host.Size{Width: 1280, Height: 720}

func testModel() *assets.Model {
	return &assets.Model{
		Name: "box",
		Mesh: &assets.Mesh{Segments: []assets.Segment{
			{A: mgl64.Vec3{-1, 0, 0}, B: mgl64.Vec3{1, 0, 0}},
		}},
	}
}

func loadNow(ctx context.Context) (*assets.Model, error) {
	return testModel(), nil
}

// frame mirrors main.Game: poll the host, update, draw.
func frame(env *host.Headless, ds *DriveScene) {
	env.Poll()
	ds.Update()
	ds.Draw(nil)
}

// settle configures the scene and blocks until its model load has resolved.
func settle(t *testing.T, ds *DriveScene) {
	t.Helper()
	ds.once.Do(ds.configure)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = ds.load.Wait(ctx)
	require.NoError(t, ctx.Err(), "model load did not resolve")
}

func motion(ds *DriveScene) components.MotionData {
	return *components.Motion.Get(ds.Car())
}

type recorder struct {
	frames []uint64
}

func (r *recorder) render(e *ecs.ECS, _ *ebiten.Image) {
	carEntry, ok := tags.Car.First(e.World)
	if !ok {
		return
	}
	r.frames = append(r.frames, components.Motion.Get(carEntry).Frame)
}

func newScene(env *host.Headless, load assets.LoadFunc, rec *recorder) *DriveScene {
	opts := DriveOptions{Env: env, Load: load, Headless: true}
	if rec != nil {
		opts.Renderers = []ecs.Renderer{rec.render}
	}
	return NewDriveScene(opts)
}

func TestDriveSceneIdleIgnoresInput(t *testing.T) {
	env := host.NewHeadless(desktop, desktop, false)
	release := make(chan struct{})
	ds := newScene(env, func(ctx context.Context) (*assets.Model, error) {
		<-release
		return testModel(), nil
	}, nil)

	ds.Update()
	require.Equal(t, cfg.PhaseIdle, ds.Phase())

	env.MovePointer(1640)
	for i := 0; i < 5; i++ {
		frame(env, ds)
	}
	m := motion(ds)
	require.Equal(t, cfg.PhaseIdle, ds.Phase())
	require.Zero(t, m.TargetX)
	require.Zero(t, m.PositionX)
	require.Zero(t, m.Frame, "integrator must not run while idle")

	close(release)
	settle(t, ds)
	frame(env, ds)
	require.Equal(t, cfg.PhaseRunning, ds.Phase())
	require.Zero(t, motion(ds).TargetX, "events from before the load are not replayed")
}

func TestDriveScenePointerMapping(t *testing.T) {
	env := host.NewHeadless(desktop, desktop, false)
	ds := newScene(env, loadNow, nil)
	settle(t, ds)
	frame(env, ds)
	require.Equal(t, cfg.PhaseRunning, ds.Phase())

	env.MovePointer(640)
	frame(env, ds)
	require.InDelta(t, 0, motion(ds).TargetX, 1e-12)

	env.MovePointer(1640)
	frame(env, ds)
	require.InDelta(t, 3.0, motion(ds).TargetX, 1e-12)

	env.MovePointer(140)
	frame(env, ds)
	require.InDelta(t, -1.5, motion(ds).TargetX, 1e-12)

	env.PushPointer(host.PointerEvent{})
	frame(env, ds)
	require.InDelta(t, -1.5, motion(ds).TargetX, 1e-12, "an event without a coordinate keeps the target")

	env.Tilt(20)
	frame(env, ds)
	require.InDelta(t, -1.5, motion(ds).TargetX, 1e-12, "only the selected source drives the target")
}

func TestDriveSceneRenderSeesThisFramesStep(t *testing.T) {
	env := host.NewHeadless(desktop, desktop, false)
	rec := &recorder{}
	ds := newScene(env, loadNow, rec)
	settle(t, ds)

	frame(env, ds)
	env.MovePointer(1640)

	const n = 30
	for i := 1; i < n; i++ {
		frame(env, ds)
	}

	require.Len(t, rec.frames, n)
	for i, f := range rec.frames {
		require.Equal(t, uint64(i+1), f, "render %d observed a stale or doubled step", i)
	}

	// frame 1 stepped with a zero target, frames 2..n with 3.0
	s := gamemath.Smoothing{Damping: cfg.Motion.Damping, RotationGain: cfg.Motion.RotationGain}
	want := s.Step(gamemath.MotionState{})
	want.TargetX = 3.0
	for i := 1; i < n; i++ {
		want = s.Step(want)
	}
	got := motion(ds)
	require.InDelta(t, want.PositionX, got.PositionX, 1e-12)
	require.InDelta(t, want.RotationY, got.RotationY, 1e-12)
	require.Less(t, got.RotationY, 0.0, "car yaws toward a target on its right")
}

func TestDriveSceneFailedNeverRuns(t *testing.T) {
	env := host.NewHeadless(desktop, desktop, false)
	rec := &recorder{}
	boom := errors.New("no such model")
	ds := newScene(env, func(ctx context.Context) (*assets.Model, error) {
		return nil, boom
	}, rec)
	settle(t, ds)

	for i := 0; i < 10; i++ {
		env.MovePointer(1640)
		frame(env, ds)
	}

	require.Equal(t, cfg.PhaseFailed, ds.Phase())
	require.ErrorIs(t, ds.Err(), boom)
	require.Zero(t, motion(ds).Frame)
	require.Zero(t, motion(ds).TargetX)
	require.Empty(t, rec.frames, "scene renderers do not run once failed")

	overlayEntry, ok := components.Overlay.First(ds.ECS().World)
	require.True(t, ok)
	overlay := components.Overlay.Get(overlayEntry)
	require.True(t, overlay.Failed)
	require.Equal(t, cfg.Overlay.FailureText, overlay.Message)
}

func TestDriveSceneNilModelFails(t *testing.T) {
	env := host.NewHeadless(desktop, desktop, false)
	ds := newScene(env, func(ctx context.Context) (*assets.Model, error) {
		return nil, nil
	}, nil)
	settle(t, ds)
	frame(env, ds)

	require.Equal(t, cfg.PhaseFailed, ds.Phase())
	require.True(t, assets.Error.Has(ds.Err()))
}

func TestDriveSceneOrientationOnSmallTouchScreen(t *testing.T) {
	phone := host.Size{Width: 800, Height: 1200}
	env := host.NewHeadless(phone, phone, true)
	ds := newScene(env, loadNow, nil)
	settle(t, ds)
	frame(env, ds)

	srcEntry, ok := components.InputSource.First(ds.ECS().World)
	require.True(t, ok)
	require.Equal(t, cfg.InputModeOrientation, components.InputSource.Get(srcEntry).Mode)

	env.Tilt(10)
	frame(env, ds)
	require.InDelta(t, 0.9, motion(ds).TargetX, 1e-12)

	env.MovePointer(0)
	frame(env, ds)
	require.InDelta(t, 0.9, motion(ds).TargetX, 1e-12)
}

func TestDriveSceneResizeMovesCenter(t *testing.T) {
	env := host.NewHeadless(desktop, desktop, false)
	ds := newScene(env, loadNow, nil)
	settle(t, ds)
	frame(env, ds)

	wide := host.Size{Width: 2000, Height: 1000}
	env.Resize(wide, wide)
	env.MovePointer(2000)
	frame(env, ds)

	vpEntry, ok := tags.Viewport.First(ds.ECS().World)
	require.True(t, ok)
	vp := components.Viewport.Get(vpEntry)
	require.Equal(t, 2.0, vp.AspectRatio)
	require.Equal(t, 1000.0, vp.HorizontalCenter)
	require.InDelta(t, 3.0, motion(ds).TargetX, 1e-12, "resize is applied before the pointer event")

	camEntry, ok := components.Camera.First(ds.ECS().World)
	require.True(t, ok)
	require.Equal(t, 2.0, components.Camera.Get(camEntry).Aspect)
}
