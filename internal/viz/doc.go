// Package viz renders oscillator runs in the terminal: a Braille-dot
// canvas for the spring animation, a bubbletea live view overlaying the
// numeric trajectory on the closed-form solution, and phase portraits
// of stored runs.
package viz
