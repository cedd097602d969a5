// Package tileshade renders directional sun shadows for 2D tile maps as a
// screen-space pass on [Ebitengine].
//
// The core is [ShadowFilter]: a post-processing filter whose Kage shader
// ray-marches through a per-tile region map (and optionally a wall-type
// map) and darkens occluded ground. Host code owns the render loop; the
// filter only holds uniform state and applies the shader when asked.
//
// # Quick start
//
//	lib := tileshade.NewShaderLibrary()
//	shadow, err := tileshade.NewShadowFilter(lib, 800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	regions := tileshade.BuildRegionMap(grid, cols, rows, 1)
//	regions.Bind(shadow)
//	shadow.SetShadowParams(4, 0.6, 1.0, "smooth")
//
// Each frame, render the scene into an offscreen image, update the scroll
// offset, and apply:
//
//	shadow.UpdateDisplayOffset(scrollX, scrollY, 48, 48)
//	shadow.Apply(sceneImage, screen)
//
// # Wall-aware shadows
//
// Classify solid tiles with [DetectWalls], pack them with [BuildWallMap]
// and bind the result via [MapTexture.BindWalls]. Wall shadows stay off
// until a real wall map has been supplied, no matter what
// [ShadowFilter.SetWallShadowEnabled] is told.
//
// # Day cycle and lights
//
// [DayCycle] derives sun angle, shadow length and strength from a simulated
// time of day, with tweened time jumps. [LightLayer] complements it at
// night: ambient darkness with feathered holes at each [Light]. Settings
// for all of the above load from YAML via [LoadConfig].
//
// The package is single-threaded by design: call everything from the game
// loop goroutine, the way Ebitengine expects.
//
// [Ebitengine]: https://ebitengine.org
package tileshade
