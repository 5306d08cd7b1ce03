// Package bgstrip erases light backgrounds from PNG sprites.
//
// A pixel whose red, green and blue channels all reach the threshold has its
// alpha forced to zero; every other pixel is left untouched. The cutoff is
// binary and per pixel, with no blending or edge smoothing, and color bytes are
// preserved so the operation is idempotent. Stripper drives the transform over
// a configured list of files, isolating failures per file.
package bgstrip
