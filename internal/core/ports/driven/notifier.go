package driven

import "github.com/captainfanatic/trolly/internal/core/domain"

// Notifier receives the URI affected by a successful mutation.
// The signal is fire-and-forget: no acknowledgement, no replay, no
// ordering guarantee. Implementations must not block the caller.
type Notifier interface {
	NotifyChange(uri domain.URI)
}
