// Package logging constructs the slog loggers the CLI uses for request
// diagnostics.
//
// Row output owns stdout, so loggers write to stderr (or an injected writer)
// in either a compact console key=value format or JSON. NewNop supplies the
// silent logger components fall back to when none is provided.
package logging
