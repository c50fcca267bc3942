// Package config loads, normalizes, and validates reelprep configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// REELPREP_LOG_LEVEL, optionally sourced from a .env file in the working
// directory.
//
// Always obtain settings through this package so commands receive canonical
// image formats, audio extensions, and clear validation errors.
package config
