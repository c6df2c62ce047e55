// Package viz is the live terminal view of the Earth–Moon scene.
//
// The scene is drawn onto a coloured braille [Canvas] through a
// [BrailleSurface]; the surrounding panel carries the telemetry readout and
// the tunable parameters. Everything runs inside one Bubble Tea program.
//
// # Key Bindings
//
//	A       - Toggle auto-orbit
//	V F P   - Toggle vectors, field grid, orbit path
//	Tab ↑↓  - Select and nudge a parameter
//	R       - Reset physical values
//	G       - Toggle GIF recording
//	S       - Save an SVG snapshot
//	?       - Show help overlay
//
// With auto-orbit off, press on the canvas and drag sideways to move the
// moon. Recordings and snapshots go to the configured data directory.
package viz
