// Package fights turns a report's raw fight list into enriched boss rows.
//
// BuildRows filters to boss encounters, orders them by in-game start time,
// and aligns every pull to the caller's video start offset so each row carries
// a ready-to-print video timestamp alongside pull number, outcome, duration,
// and remaining boss health when the API reported one.
package fights
