// Package config loads, normalizes, and validates assetkit configuration data.
//
// It supplies repository defaults (including the sprite list and vocabulary
// markers the tools were first written against), expands user paths with tilde
// shortcuts, reads TOML files, and honours environment fallbacks such as
// ASSETKIT_STRIP_DIR. Both tools receive their directories, file lists, and
// thresholds from here instead of embedding them.
package config
