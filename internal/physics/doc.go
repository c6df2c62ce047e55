// Package physics holds the closed-form Earth–Moon formulas behind the
// telemetry panel and the vector overlay.
//
// Every function is pure. Two force scalings live side by side:
//
//   - [Force]: the headline gravitational magnitude shown in the panel
//   - [ArrowForce]: the raw value behind arrow length, compressed by
//     [ArrowLength] so the overlay stays on screen
//
// They use different constants on purpose and must not be merged.
//
//	tel := physics.Compute(p)
//	fmt.Printf("%s %.2f\n", tel.Status, tel.Force)
package physics
