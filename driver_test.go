package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastDriver(p Platform, opts ...DriverOption) *Driver {
	opts = append(opts, WithPollInterval(100*time.Microsecond))
	return NewDriver(p, opts...)
}

func TestDriverRunStopsWhenAllWindowsClose(t *testing.T) {
	p := newStubPlatform()
	d := fastDriver(p)

	w, err := d.CreateWindow(WindowConfig{Title: "main", W: 100, H: 100}, Handlers{})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Root().Len())

	p.push(QuitEvent{})

	done := make(chan error, 1)
	go func() { done <- d.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop after quit")
	}

	assert.True(t, w.Dead())
	assert.Equal(t, 1, p.opened[0].destroyCount())
	assert.Zero(t, d.Root().Len(), "closed window is removed from the root")
}

func TestDriverStopFromUpdateHandler(t *testing.T) {
	p := newStubPlatform()
	d := fastDriver(p)

	var steps atomic.Int64
	_, err := d.CreateWindow(WindowConfig{Title: "brief", W: 10, H: 10}, Handlers{
		Update: func(*Entity, float64) Signal {
			if steps.Add(1) >= 3 {
				return Stop
			}
			return Continue
		},
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- d.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop after handler signalled Stop")
	}
	assert.GreaterOrEqual(t, steps.Load(), int64(3))
}

func TestDriverCreateWindowFromUserEvent(t *testing.T) {
	p := newStubPlatform()
	d := fastDriver(p)

	_, err := d.CreateWindow(WindowConfig{Title: "first", W: 10, H: 10}, Handlers{})
	require.NoError(t, err)

	var userHits atomic.Int64
	second := WindowConfig{Title: "second", W: 20, H: 20}
	secondHandlers := Handlers{
		User: func(*Entity, UserEvent) Signal { userHits.Add(1); return Continue },
	}
	p.push(UserEvent{Code: CodeCreateWindow, Data1: &second, Data2: &secondHandlers})
	p.push(QuitEvent{})

	done := make(chan error, 1)
	go func() { done <- d.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop")
	}

	assert.Equal(t, 2, p.openCount(), "the create event opens a second window")
	assert.Zero(t, userHits.Load(), "the create event itself is consumed, not forwarded")
}

func TestDriverIgnoresMalformedCreateEvent(t *testing.T) {
	p := newStubPlatform()
	d := fastDriver(p)

	_, err := d.CreateWindow(WindowConfig{Title: "only", W: 10, H: 10}, Handlers{})
	require.NoError(t, err)

	p.push(UserEvent{Code: CodeCreateWindow, Data1: "not a config"})
	p.push(QuitEvent{})

	done := make(chan error, 1)
	go func() { done <- d.Run() }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop")
	}
	assert.Equal(t, 1, p.openCount())
}

func TestDriverTargetedEventSkipsOtherWindows(t *testing.T) {
	p := newStubPlatform()
	d := fastDriver(p)

	var aKeys, bKeys atomic.Int64
	wa, err := d.CreateWindow(WindowConfig{Title: "a", W: 10, H: 10}, Handlers{
		KeyDown: func(*Entity, KeyEvent) Signal { aKeys.Add(1); return Continue },
	})
	require.NoError(t, err)
	_, err = d.CreateWindow(WindowConfig{Title: "b", W: 10, H: 10}, Handlers{
		KeyDown: func(*Entity, KeyEvent) Signal { bKeys.Add(1); return Continue },
	})
	require.NoError(t, err)

	p.push(KeyEvent{Windowed: Windowed{Window: wa.NativeID()}, Down: true})
	p.push(QuitEvent{})

	done := make(chan error, 1)
	go func() { done <- d.Run() }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop")
	}

	assert.Equal(t, int64(1), aKeys.Load())
	assert.Zero(t, bKeys.Load())
}

func TestDriverFrameRateGating(t *testing.T) {
	p := newStubPlatform()

	// a fake clock advancing one millisecond per polling pass makes the
	// gate deterministic
	base := time.Unix(0, 0)
	var ticks atomic.Int64
	clock := func() time.Time {
		return base.Add(time.Duration(ticks.Add(1)) * time.Millisecond)
	}

	const passes = 600
	var passCount atomic.Int64
	sleep := func(time.Duration) {
		if passCount.Add(1) == passes {
			p.push(QuitEvent{})
		}
		time.Sleep(200 * time.Microsecond)
	}

	d := NewDriver(p, WithClock(clock), WithSleep(sleep))

	var fast, slow atomic.Int64
	_, err := d.CreateWindow(WindowConfig{Title: "fast", W: 10, H: 10, FrameRate: 60}, Handlers{
		Update: func(*Entity, float64) Signal { fast.Add(1); return Continue },
	})
	require.NoError(t, err)
	_, err = d.CreateWindow(WindowConfig{Title: "slow", W: 10, H: 10, FrameRate: 30}, Handlers{
		Update: func(*Entity, float64) Signal { slow.Add(1); return Continue },
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- d.Run() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("driver did not stop")
	}

	f, s := fast.Load(), slow.Load()
	require.Greater(t, s, int64(5), "slow window barely updated: %d", s)
	ratio := float64(f) / float64(s)
	assert.Greater(t, ratio, 1.4, "fast=%d slow=%d", f, s)
	assert.Less(t, ratio, 2.8, "fast=%d slow=%d", f, s)
}

func TestWindowThreadTearsDownOwnContext(t *testing.T) {
	// the renderer is released and the context detached by the window's
	// own thread before complete is set; the driver-side Destroy only
	// reclaims the native window
	p := newStubPlatform()
	w, err := NewWindow(p, WindowConfig{Title: "gl", W: 10, H: 10}, Handlers{
		Update: func(*Entity, float64) Signal { return Stop },
	})
	require.NoError(t, err)
	native := p.opened[0]

	s := NewWindowScheduler(nil)
	s.Spawn(w)

	var reaped *Window
	deadline := time.Now().Add(5 * time.Second)
	for reaped == nil && time.Now().Before(deadline) {
		s.Reap(func(w *Window) { reaped = w })
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, reaped, "window thread never finished")

	// before Destroy, the thread already tore its graphics state down
	assert.Equal(t, 1, native.ren.releaseCount())
	assert.Equal(t, 1, native.detachCount())
	assert.False(t, native.detachedBeforeRelease,
		"renderer must be released while the context is still bound")
	assert.Zero(t, native.destroyCount())

	w.Destroy()

	assert.Equal(t, 1, native.ren.releaseCount(), "renderer is not released twice")
	assert.Equal(t, 1, native.destroyCount())
	assert.False(t, native.destroyedBeforeRelease)
}

func TestSchedulerReapReturnsFinishedWindows(t *testing.T) {
	p := newStubPlatform()
	w, err := NewWindow(p, WindowConfig{Title: "once", W: 10, H: 10}, Handlers{
		Update: func(*Entity, float64) Signal { return Stop },
	})
	require.NoError(t, err)

	s := NewWindowScheduler(nil)
	s.Spawn(w)
	require.Equal(t, 1, s.Len())

	var reaped *Window
	deadline := time.Now().Add(5 * time.Second)
	for reaped == nil && time.Now().Before(deadline) {
		s.Reap(func(w *Window) { reaped = w })
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, reaped, "window thread never finished")
	assert.Same(t, w, reaped)
	assert.Zero(t, s.Len())
}
