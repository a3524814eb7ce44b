// Example opens two windows driven by one event loop: a bouncing square
// updated at 60 frames per second and a bezier-curve viewer capped at
// 30. Closing both windows, or pressing escape in either, ends the
// program.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/stageloop/engine"
	glfwbackend "github.com/stageloop/engine/backend/glfw"
	"github.com/stageloop/engine/geom"
)

func init() {
	// Window creation and event polling must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := defaultConfig()
	if len(os.Args) > 1 {
		loaded, err := engine.LoadConfig(os.Args[1])
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := engine.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	platform, err := glfwbackend.New()
	if err != nil {
		return err
	}
	defer platform.Terminate()

	driver := engine.NewDriver(platform, engine.WithLogger(log))

	for i, wc := range cfg.Windows {
		h := curveHandlers()
		if i == 0 {
			h = bouncerHandlers()
		}
		if _, err := driver.CreateWindow(wc, h); err != nil {
			return err
		}
	}

	return driver.Run()
}

func defaultConfig() *engine.Config {
	return &engine.Config{
		Logging: engine.LoggingConfig{Level: "debug"},
		Windows: []engine.WindowConfig{
			{
				Title: "bouncer", W: 640, H: 480, FrameRate: 60,
				RendererFlags: engine.RendererVSync,
			},
			{Title: "curves", W: 640, H: 480, FrameRate: 30},
		},
	}
}

// bouncerHandlers draws a square that drifts across the window and
// reverses at the edges.
func bouncerHandlers() engine.Handlers {
	return engine.Handlers{
		Init: func(e *engine.Entity) {
			e.Position = geom.Vec3{X: 320, Y: 240}
			// integration scales by 60/elapsedSeconds, ~3600 at 60 fps
			e.MoveVector = geom.Vec3{X: 0.0008, Y: 0.0006}
		},
		Update: func(e *engine.Entity, elapsed float64) engine.Signal {
			if e.Position.X < 20 || e.Position.X > 620 {
				e.MoveVector.X = -e.MoveVector.X
			}
			if e.Position.Y < 20 || e.Position.Y > 460 {
				e.MoveVector.Y = -e.MoveVector.Y
			}
			return engine.Continue
		},
		Render: func(e *engine.Entity, target engine.Renderer, offset geom.Vec3) {
			x := e.Position.X + offset.X
			y := e.Position.Y + offset.Y
			const s = 20.0
			target.DrawLines([]geom.Vec2{
				{X: x - s, Y: y - s},
				{X: x + s, Y: y - s},
				{X: x + s, Y: y + s},
				{X: x - s, Y: y + s},
				{X: x - s, Y: y - s},
			}, engine.Color{R: 240, G: 200, B: 40, A: 255}, 2)
		},
		KeyDown: escToClose,
	}
}

// curveHandlers draws an S-curve path flattened adaptively.
func curveHandlers() engine.Handlers {
	path, err := geom.NewPath([]geom.Curve{
		{
			P0: geom.Vec2{X: 60, Y: 400},
			C0: geom.Vec2{X: 200, Y: 40},
			C1: geom.Vec2{X: 440, Y: 440},
			P1: geom.Vec2{X: 580, Y: 80},
		},
		geom.Line(geom.Vec2{X: 580, Y: 80}, geom.Vec2{X: 60, Y: 400}),
	}, []int{0, 2})
	if err != nil {
		panic(err)
	}
	pts := path.Flatten(0.5)

	return engine.Handlers{
		Render: func(e *engine.Entity, target engine.Renderer, offset geom.Vec3) {
			target.DrawLines(pts, engine.Color{R: 80, G: 200, B: 255, A: 255}, 1.5)
		},
		KeyDown: escToClose,
	}
}

// GLFW's escape keycode.
const keyEscape = 256

func escToClose(e *engine.Entity, ev engine.KeyEvent) engine.Signal {
	if ev.Key == keyEscape {
		return engine.Stop
	}
	return engine.Continue
}
