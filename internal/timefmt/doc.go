// Package timefmt parses and renders the clock strings the CLI trades in.
//
// ParseHHMMSS validates user-entered video start times, while FormatHHMMSS and
// FormatDuration render computed second counts back into HH:MM:SS and MM:SS
// text. The formatters are total: negative or NaN inputs clamp to zero rather
// than failing.
package timefmt
