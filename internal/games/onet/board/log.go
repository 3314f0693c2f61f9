package board

import (
	"io"

	"github.com/charmbracelet/log"
)

var logger = log.New(io.Discard)

// SetLogger routes the engine's debug trace to l. A nil logger silences it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
