// Package solitaire is a Klondike table for [Ebitengine] built on a small
// retained-mode scene graph.
//
// The table has a draw pile, a discard pile, four foundations and seven
// tableau piles. Tableau cards can be dragged; every card stacked on top of
// the dragged one moves with it, and the whole run snaps back to where it
// started on release. There is no rules engine.
//
// # Quick start
//
//	err := solitaire.Run(solitaire.RunConfig{
//		Title:  "Solitaire",
//		Layout: solitaire.DefaultLayout(),
//	})
//
// [Run] opens a window over a [Game], which drives a [Registry] of stages:
// a preload stage that obtains the card [SpriteSheet] and the game stage that
// owns the [Board].
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]; children inherit their parent's translation, scale and
// alpha. Siblings paint in ascending [Node.ZIndex] order, with ties broken
// by insertion order. Each tableau pile is one container so raising the
// pile raises all of its cards.
//
// # Input
//
// The scene turns mouse and touch input into pointer, click and drag
// events. A press on a [Node.Draggable] node becomes a drag once the
// pointer leaves the dead zone. [DragContext.DragX] and [DragContext.DragY]
// give the node position in its parent's space that keeps the grab offset.
// Tests drive input headlessly through [Scene.InjectPress],
// [Scene.InjectMove], [Scene.InjectRelease] and [Scene.InjectDrag].
//
// # Dragging tableau runs
//
// [TableauDragController] listens to the scene's drag events. On drag
// start it records restore points, raises the pile and dims the dragged
// card. While dragging it cascades the followers below the pointer card.
// On drag end it restores depth, opacity and every position.
//
// # Layout and settings
//
// Table geometry lives in [Layout], loadable from YAML or TOML with
// [LoadLayout]. Player preferences persist through a [SettingsStore].
//
// Set [Layout.Debug] or press F1 at runtime to outline click zones and log
// input to stderr.
//
// [Ebitengine]: https://ebitengine.org
package solitaire
