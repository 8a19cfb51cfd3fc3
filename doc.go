// Package rowan is a small 2D game engine for [Ebitengine]: a scene/entity
// list, sprite rendering with frame animation, a force/velocity physics
// layer with box and circle collision shapes, a retained-mode UI widget
// tree, and a fixed-tick engine loop.
//
// # Quick start
//
// Create an [Engine], register one or more scenes, pick the starting scene,
// and run:
//
//	eng := rowan.New(rowan.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//	scene := rowan.NewScene()
//	// ... add entities and widgets ...
//	eng.AddScene("main", scene)
//	eng.SetCurrentScene("main")
//	if err := eng.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Each frame the engine polls input, forwards the raw events to the current
// scene, updates every entity in insertion order, and renders them in that
// same order, with the UI tree drawn on top.
//
// # Entities
//
// Every scene object is an [Entity]. A single flat struct covers all entity
// types; create them with the typed constructors [NewEntity], [NewSprite],
// and [NewAnimatedSprite]. Behavior hangs off optional attachments
// ([NewBody] for physics, [NewBoxShape]/[NewCircleShape] for collision) and
// per-entity callbacks (OnEvent, OnUpdate, OnRender).
//
//	hero := rowan.NewSprite("hero", "hero_texture")
//	hero.X, hero.Y = 100, 50
//	scene.AddEntity(hero)
//
// Textures, sounds, and fonts are loaded by name into the engine's
// [Resources] table; sprites resolve their texture lazily on first render.
//
// # UI
//
// Widgets form a tree rooted at [Scene.UI]. Create them with [NewPanel],
// [NewButton], and [NewLabel]; panels can position their children with a
// vertical or horizontal [Layout].
//
// [Ebitengine]: https://ebitengine.org
package rowan
