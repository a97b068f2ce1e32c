package course

import (
	"time"

	"github.com/abhisek/baselearn/internal/navigator"
)

// selectModuleMsg is sent by the sidebar when a module is chosen.
type selectModuleMsg struct {
	Index int
}

// flagExpiredMsg is sent when a transient highlight's time is up.
type flagExpiredMsg struct {
	Event navigator.ExpireFlag
}

// diagramTickMsg advances the layer diagram animation.
type diagramTickMsg time.Time
