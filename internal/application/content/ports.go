package content

import "context"

// AssetEncoder converts uploaded bytes into an embeddable data URL off the
// calling goroutine. Requests for the same slot carry increasing tokens and
// only the latest one delivers, so a slow early upload never overwrites a
// later one.
type AssetEncoder interface {
	Encode(ctx context.Context, slot, mimeType string, data []byte, deliver func(dataURL string)) uint64
}

// SessionFlagStore records once-per-session boolean flags, such as whether
// the marketing popup has already been dismissed
type SessionFlagStore interface {
	// Get reports whether the flag has been set this session
	Get(key string) bool

	// Set sets the flag for the rest of the session
	Set(key string)
}

// flag key for the marketing popup
const popupSeenKey = "popup_seen"
