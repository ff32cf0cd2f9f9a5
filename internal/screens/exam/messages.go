package exam

import (
	"time"

	"github.com/grknsolak/it-certification-app/internal/session"
)

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// resultSavedMsg reports the outcome of persisting a finished result.
type resultSavedMsg struct {
	Result *session.Result
	Err    error
}
