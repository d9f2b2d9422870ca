// Package starfall renders the animated hero header of an informational site
// on [Ebitengine]: a fixed pool of meteors falling diagonally across the
// surface between two depth layers that shift against the pointer.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a resizable window
// and game loop for you:
//
//	hero := starfall.NewHero(starfall.HeroConfig{
//		Star: starfall.LoadStarFile("img/STAR.png"),
//	})
//	starfall.Run(hero, starfall.RunConfig{Title: "Starfall", Width: 1280, Height: 720})
//
// [Hero] implements [ebiten.Game], so it can also be embedded in an existing
// game by forwarding Update, Draw and Layout.
//
// # Meteors
//
// A [Field] owns exactly [FieldConfig].Count meteors for its whole life.
// Field.Tick moves each one along its heading and spins it; a meteor that
// passes the right or bottom edge by more than the exit margin is re-rolled
// above the frame instead of being removed. Field.Render draws a fading
// trail and a rotated head sprite per meteor without touching their state.
//
// Head sprites come from a [StarSprite]. Loading happens in the background;
// until it finishes, or if it fails, a procedural radial glow is drawn.
//
// # Parallax
//
// [Parallax] eases a normalised offset toward the pointer each tick using
// exponential smoothing. [Parallax.LayerOffsets] turns it into pixel
// translations for the base and top [Layer]. A blend of 1 snaps instantly.
//
// Nothing in the frame loop returns an error: a missing asset, surface or
// layer degrades to the fallback or to drawing nothing.
//
// [Ebitengine]: https://ebitengine.org
package starfall
