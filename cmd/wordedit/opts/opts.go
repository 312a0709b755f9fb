// Package opts carries dependencies shared by all wordedit commands.
package opts

import (
	"github.com/ildunari/enhanced-word-live/pkg/log"
)

// 🔧 RootOpts holds the wiring every command needs.
type RootOpts struct {
	// Console is the human-facing logger.
	Console *log.Logger
}
