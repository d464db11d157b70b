// Package pipeline walks sample files in order and hands every sample to a
// visit callback. It is strictly sequential; cancellation is honored between
// lines and between samples.
package pipeline
