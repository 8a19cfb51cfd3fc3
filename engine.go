package rowan

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Engine owns the scene registry, resource table, and input snapshot, and
// drives the frame loop: events, then update, then render, paced at the
// configured tick rate. Everything runs on one goroutine; there is no
// concurrent mutation anywhere in the frame.
type Engine struct {
	cfg       RunConfig
	resources *Resources
	input     *Input

	scenes      map[string]*Scene
	current     *Scene
	currentName string

	running  bool
	lastTime time.Time

	// Event synthesis state (see event.go)
	events                 []Event
	injectQueue            []Event
	keyBuf                 []Key
	lastMouseX, lastMouseY float64

	frame Frame // reused per-frame context
}

// New creates an engine with the given configuration. Zero-valued config
// fields fall back to defaults (800x600, 60 TPS).
func New(cfg RunConfig) *Engine {
	cfg.applyDefaults()
	return &Engine{
		cfg:       cfg,
		resources: NewResources(),
		input:     NewInput(),
		scenes:    make(map[string]*Scene),
	}
}

// Resources returns the engine's resource table.
func (e *Engine) Resources() *Resources {
	return e.resources
}

// Input returns the engine's rolling input snapshot.
func (e *Engine) Input() *Input {
	return e.input
}

// AddScene registers the scene under name and back-points it at the engine.
// Registering does not make the scene current.
func (e *Engine) AddScene(name string, s *Scene) {
	e.scenes[name] = s
	s.engine = e
}

// SetCurrentScene switches to the named scene. Unknown names are a silent
// no-op. On a real switch the outgoing scene's OnExit runs strictly before
// the incoming scene's OnEnter, and the switch is committed before OnEnter
// runs, so the entering scene already observes itself as current.
func (e *Engine) SetCurrentScene(name string) {
	next, ok := e.scenes[name]
	if !ok {
		return
	}
	if e.current != nil {
		e.current.exit()
	}
	from := e.currentName
	e.current = next
	e.currentName = name
	next.enter()
	logger.Debug("scene switch", zap.String("from", from), zap.String("to", name))
}

// CurrentScene returns the active scene, or nil before the first switch.
func (e *Engine) CurrentScene() *Scene {
	return e.current
}

// CurrentSceneName returns the active scene's registered name.
func (e *Engine) CurrentSceneName() string {
	return e.currentName
}

// Stop requests the loop to end after the current iteration completes.
func (e *Engine) Stop() {
	e.running = false
}

// Update implements ebiten.Game. One tick: compute the wall-clock delta,
// clear the input edge sets, poll events and fold each into the snapshot
// while forwarding it to the current scene, then tick the scene.
func (e *Engine) Update() error {
	now := time.Now()
	var dt float64
	if e.lastTime.IsZero() {
		dt = 1 / float64(e.cfg.TPS)
	} else {
		dt = now.Sub(e.lastTime).Seconds()
	}
	e.lastTime = now

	e.frame = Frame{DT: dt, Input: e.input, Resources: e.resources}

	e.input.BeginFrame()
	for _, ev := range e.pollEvents() {
		if ev.Type == EventQuit {
			e.running = false
		}
		e.input.Fold(ev)
		if e.current != nil {
			e.current.HandleEvent(ev, &e.frame)
		}
	}

	if e.current != nil {
		e.current.Update(&e.frame)
	}

	// Returning Termination from Update means ebiten never calls Draw for
	// this tick: the quitting iteration updates but does not present, and the
	// last visible frame is the previous one.
	if !e.running {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game: clear, then render the current scene.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(e.cfg.ClearColor.toNRGBA())
	if e.current != nil {
		e.current.Render(screen, &e.frame)
	}
}

// Layout implements ebiten.Game with a fixed logical resolution.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}

// Run opens the window and drives the loop at the configured tick rate until
// Stop is called or the host window is closed. Closing the window is
// delivered to the current scene as an EventQuit before the loop ends.
func (e *Engine) Run() error {
	if e.cfg.Debug {
		if l, err := zap.NewDevelopment(); err == nil {
			SetLogger(l)
		}
	}

	ebiten.SetWindowSize(e.cfg.Width, e.cfg.Height)
	ebiten.SetWindowTitle(e.cfg.Title)
	ebiten.SetTPS(e.cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	e.running = true
	e.lastTime = time.Time{}

	logger.Info("engine start",
		zap.String("title", e.cfg.Title),
		zap.Int("width", e.cfg.Width),
		zap.Int("height", e.cfg.Height),
		zap.Int("tps", e.cfg.TPS),
	)
	err := ebiten.RunGame(e)
	logger.Info("engine stop")
	return err
}
