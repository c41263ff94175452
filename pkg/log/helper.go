package log

import (
	"fmt"
	stdlog "log"
)

// MustInit initializes the SQLite sink for the named app, exiting on
// failure.
func MustInit(app string) {
	if err := Init(fmt.Sprintf("%s.db", app)); err != nil {
		stdlog.Fatalf("FATAL: Failed to initialize logger: %v\n", err)
	}
}
