// Package config loads, normalizes, and validates quizdb configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the migrator needs: the data tree root, the database and lock file paths,
// logging format and level, and the default overwrite behavior.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
