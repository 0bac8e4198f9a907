// Command logtime generates VOD timestamps for the boss pulls in a Warcraft
// Logs report.
//
// Given a report id, an API key, and the video time of the first pull, it
// fetches the report's fight list and prints one line per boss encounter with
// the video timestamp, boss name, pull number, and outcome. Table and JSON
// renderings of the same rows are available through --format.
package main
