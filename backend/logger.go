package backend

import (
	"log/slog"

	"github.com/gogpu/prim"
)

// logger returns the shared prim logger so backend packages honour
// prim.SetLogger.
func logger() *slog.Logger {
	return prim.Logger()
}
