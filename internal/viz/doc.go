// Package viz provides terminal-based visualization for map orbits.
//
// The package implements a live cobweb explorer using the Bubble Tea
// framework:
//
//   - [Model]: interactive orbit view with rate and start-point controls
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//
// # Key Bindings
//
//	Space - Pause/Resume iteration
//	R     - Reset the orbit
//	Up/K  - Raise the rate
//	Down/J- Lower the rate
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// The explorer supports recording sessions as GIF animations using the
// G key. Recordings are saved to the current directory.
package viz
