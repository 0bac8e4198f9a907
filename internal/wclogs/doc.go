// Package wclogs provides the HTTP client for the Warcraft Logs v1 API.
//
// The client performs a single authenticated GET per report, buffers the
// response, and decodes the fight list into typed records. Every failure on
// the wire or during decoding is tagged with ErrAPI so callers can surface one
// consistent error class for the whole fetch.
package wclogs
