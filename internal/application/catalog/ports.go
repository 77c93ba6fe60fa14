package catalog

import "context"

// AssetEncoder converts uploaded bytes into an embeddable data URL off the
// calling goroutine. Per-slot request tokens increase monotonically and only
// the latest request delivers.
type AssetEncoder interface {
	Encode(ctx context.Context, slot, mimeType string, data []byte, deliver func(dataURL string)) uint64
}
