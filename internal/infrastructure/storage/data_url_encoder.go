package storage

import (
	"context"
	"encoding/base64"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// DataURLEncoder turns uploaded image bytes into data URLs off the calling
// goroutine. Each upload slot (hero image, product photo, ...) issues
// monotonically increasing request tokens; when encodes finish out of order
// only the latest request may deliver, stale results are dropped.
type DataURLEncoder struct {
	logger *zap.Logger

	mu    sync.Mutex
	slots map[string]*uint64
}

// NewDataURLEncoder creates a new DataURLEncoder
func NewDataURLEncoder(logger *zap.Logger) *DataURLEncoder {
	return &DataURLEncoder{
		logger: logger,
		slots:  make(map[string]*uint64),
	}
}

// Encode starts an asynchronous encode for the slot and returns the request
// token. The callback runs only if no newer request for the same slot was
// issued in the meantime.
func (e *DataURLEncoder) Encode(ctx context.Context, slot, mimeType string, data []byte, deliver func(dataURL string)) uint64 {
	latest := e.slot(slot)
	token := atomic.AddUint64(latest, 1)

	go func() {
		encoded := base64.StdEncoding.EncodeToString(data)
		url := "data:" + mimeType + ";base64," + encoded

		select {
		case <-ctx.Done():
			return
		default:
		}

		if atomic.LoadUint64(latest) != token {
			e.logger.Debug("stale encode dropped",
				zap.String("slot", slot),
				zap.Uint64("token", token),
			)
			return
		}
		deliver(url)
	}()

	return token
}

func (e *DataURLEncoder) slot(name string) *uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	counter, ok := e.slots[name]
	if !ok {
		counter = new(uint64)
		e.slots[name] = counter
	}
	return counter
}
