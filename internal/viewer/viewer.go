package viewer

import (
	"log"
	"time"

	"keyboard3d/internal/assets"
	"keyboard3d/internal/config"
	"keyboard3d/internal/keyboard"
	"keyboard3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewer is the host for the keyboard scene: it owns the window, the frame
// clock and the renderer, and acts as the error boundary for the model.
type Viewer struct {
	Config    config.Config
	Cache     *assets.Cache
	Renderer  *world.Renderer
	Keyboard  *keyboard.Handle
	DebugMode bool
	DumpPath  string // scene snapshot written on exit when set

	boundaryErr error
	flips       int

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config, cache *assets.Cache) *Viewer {
	background, err := config.ParseColor(cfg.Background)
	if err != nil {
		background = rl.Blank
	}
	return &Viewer{
		Config:    cfg,
		Cache:     cache,
		Renderer:  world.NewRenderer(background),
		DebugMode: cfg.DebugOverlay,
	}
}

func (v *Viewer) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint | rl.FlagWindowTransparent)
	rl.InitWindow(v.Config.WindowWidth, v.Config.WindowHeight, v.Config.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(v.Config.TargetFPS)

	// Shader and model uploads need the GL context created above.
	v.Renderer.Initialize(v.Config.ShaderDir)
	defer v.Renderer.Unload()
	defer v.Cache.Unload()

	v.Mount()
	defer v.Unmount()

	for !rl.WindowShouldClose() {
		v.Update(rl.GetFrameTime())
		v.Draw()
	}

	if v.DumpPath != "" {
		if err := world.SaveScene(v.Keyboard.Scene, v.DumpPath); err != nil {
			log.Printf("Scene dump failed: %v", err)
		} else {
			log.Printf("Scene written to %s", v.DumpPath)
		}
	}
}

// Options maps the config onto the keyboard scene options.
func (v *Viewer) Options() keyboard.Options {
	opts := keyboard.DefaultOptions()
	opts.CameraPosition = rl.Vector3{X: 0, Y: 0, Z: v.Config.CameraDistance}
	opts.Fovy = v.Config.Fovy
	opts.DampingFPS = v.Config.DampingFPS()
	opts.DampingFreq = v.Config.DampingFrequency
	return opts
}

// Mount composes the keyboard scene and wires the boundary and lighting hooks.
func (v *Viewer) Mount() {
	v.boundaryErr = nil
	v.Keyboard = keyboard.ComposeWith(v.Cache, v.Options())

	h := v.Keyboard
	h.Renderer.OnReady.AddListener(func() {
		v.Renderer.Bind(h.Scene)
	})
	h.Renderer.OnError.AddListener(v.catch)
	h.Orbit.DirectionChanged.AddListener(func(speed float32) {
		v.flips++
		if v.DebugMode {
			log.Printf("Auto-rotate reversed: speed %+.0f", speed)
		}
	})
}

// catch is the error boundary: the failed subtree stops drawing, the window stays up.
func (v *Viewer) catch(err error) {
	v.boundaryErr = err
	log.Printf("Keyboard scene failed: %v", err)
}

func (v *Viewer) Unmount() {
	if v.Keyboard != nil {
		v.Keyboard.Unmount()
	}
}

func (v *Viewer) Update(deltaTime float32) {
	start := time.Now()
	v.Keyboard.Update(deltaTime)
	v.updateMs = float64(time.Since(start).Microseconds()) / 1000.0
}

func (v *Viewer) Draw() {
	rl.BeginDrawing()

	start := time.Now()
	if camera, ok := v.Keyboard.Camera(); ok {
		v.Renderer.Draw(v.Keyboard.Scene, camera)
	} else {
		rl.ClearBackground(v.Renderer.Background)
	}
	v.drawMs = float64(time.Since(start).Microseconds()) / 1000.0

	if v.DebugMode {
		v.drawOverlay()
	}
	rl.EndDrawing()
}
