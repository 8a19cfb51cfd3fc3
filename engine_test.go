package rowan

import "testing"

func TestAddSceneSetsEnginePointer(t *testing.T) {
	eng := New(RunConfig{})
	s := NewScene()

	eng.AddScene("menu", s)

	if s.Engine() != eng {
		t.Error("AddScene should back-point the scene at the engine")
	}
	if eng.CurrentScene() != nil {
		t.Error("registering must not make the scene current")
	}
}

func TestSetCurrentSceneUnknownNameIsNoOp(t *testing.T) {
	eng := New(RunConfig{})
	s := NewScene()
	eng.AddScene("menu", s)
	eng.SetCurrentScene("menu")

	eng.SetCurrentScene("missing")

	if eng.CurrentScene() != s {
		t.Error("unknown scene name must leave the current scene unchanged")
	}
	if eng.CurrentSceneName() != "menu" {
		t.Errorf("CurrentSceneName() = %q, want %q", eng.CurrentSceneName(), "menu")
	}
}

func TestSceneSwitchExitBeforeEnter(t *testing.T) {
	eng := New(RunConfig{})
	var order []string

	menu := NewScene()
	menu.OnEnter = func() { order = append(order, "menu.enter") }
	menu.OnExit = func() { order = append(order, "menu.exit") }
	game := NewScene()
	game.OnEnter = func() { order = append(order, "game.enter") }

	eng.AddScene("menu", menu)
	eng.AddScene("game", game)

	eng.SetCurrentScene("menu")
	eng.SetCurrentScene("game")

	want := []string{"menu.enter", "menu.exit", "game.enter"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestSwitchCommitsBeforeEnter(t *testing.T) {
	eng := New(RunConfig{})
	game := NewScene()
	var observed string
	game.OnEnter = func() { observed = eng.CurrentSceneName() }
	eng.AddScene("game", game)

	eng.SetCurrentScene("game")

	if observed != "game" {
		t.Errorf("OnEnter observed current scene %q, want %q", observed, "game")
	}
}

func TestFirstSceneHasNoExit(t *testing.T) {
	eng := New(RunConfig{})
	calls := 0
	s := NewScene()
	s.OnExit = func() { calls++ }
	eng.AddScene("only", s)

	eng.SetCurrentScene("only")

	if calls != 0 {
		t.Errorf("OnExit calls = %d, want 0 on the first switch", calls)
	}
}

func TestConfigDefaultsApplied(t *testing.T) {
	eng := New(RunConfig{})

	if eng.cfg.Width != 800 || eng.cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", eng.cfg.Width, eng.cfg.Height)
	}
	if eng.cfg.TPS != 60 {
		t.Errorf("TPS = %d, want 60", eng.cfg.TPS)
	}
	if eng.cfg.Title == "" {
		t.Error("title default should be set")
	}
}

func TestInjectClickQueuesPressThenRelease(t *testing.T) {
	eng := New(RunConfig{})

	eng.InjectClick(10, 20)

	if len(eng.injectQueue) != 2 {
		t.Fatalf("queue length = %d, want 2", len(eng.injectQueue))
	}
	down, up := eng.injectQueue[0], eng.injectQueue[1]
	if down.Type != EventMouseDown || down.Button != MouseButtonLeft || down.X != 10 || down.Y != 20 {
		t.Errorf("first event = %+v, want left mouse down at (10, 20)", down)
	}
	if up.Type != EventMouseUp {
		t.Errorf("second event type = %d, want EventMouseUp", up.Type)
	}
}
