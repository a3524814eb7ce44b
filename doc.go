/*
Package engine is a small real-time application runtime: a scene graph of
mutable objects dispatched through a uniform event-handler table, rendered
each frame to one or more native windows, with every window driven on its
own OS thread and synchronized against a single event-polling driver.

# Overview

The scene is a tree of nodes. Entity is the base addressable unit: spatial
state, a process-unique identity, and a table of per-event-kind handlers.
Container owns a keyed collection of child nodes and re-broadcasts every
dispatch to its children before invoking its own handlers. Window is a
Container bound to one native window and render target.

Every dispatch returns a Signal. A handler that returns Stop short-circuits
the traversal and, at the top of a window's loop, terminates that window's
thread. This is the only cancellation mechanism; there is no forced
shutdown.

# Quick Start

	platform, _ := glfw.New()
	defer platform.Terminate()

	driver := engine.NewDriver(platform, engine.WithLogger(logger))

	handlers := engine.DefaultHandlers()
	handlers.Render = func(e *engine.Entity, target engine.Renderer, offset geom.Vec3) {
	    // draw relative to e.Position.Add(offset)
	}

	_, err := driver.CreateWindow(engine.WindowConfig{
	    Title: "main", W: 1280, H: 720, FrameRate: 60,
	}, handlers)
	if err != nil {
	    return err
	}

	return driver.Run() // blocks until the last window closes

# Threading Model

The driver thread polls the platform event queue and is the only thread
that creates or destroys native windows. Each window runs one OS-locked
goroutine that renders, updates, then blocks on a condition variable until
the driver has appended that window's share of the polled events and
signaled, gated by the window's configured target frame rate. Windows are
mutually unordered and may run at independent rates.

The scene graph under a window is confined to that window's thread. Only
the pending-event buffer and the completion flag cross the thread boundary,
both guarded by the window's mutex.
*/
package engine
