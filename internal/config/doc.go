// Package config loads and normalizes optional logtime defaults.
//
// The CLI works with no file at all: Load falls back to repository defaults
// when nothing exists at the requested (or default) path. A TOML file can
// override the API endpoint, request timeout, output format, and log settings;
// the report id, api key, and video start time always come from the command
// line.
package config
