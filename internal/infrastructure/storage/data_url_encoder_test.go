package storage

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// deliveries collects callback results across goroutines
type deliveries struct {
	mu   sync.Mutex
	urls []string
}

func (d *deliveries) add(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.urls = append(d.urls, url)
}

func (d *deliveries) snapshot() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.urls...)
}

func TestDataURLEncoder_Encode(t *testing.T) {
	t.Run("delivers a data URL", func(t *testing.T) {
		e := NewDataURLEncoder(zap.NewNop())
		done := make(chan string, 1)

		token := e.Encode(context.Background(), "hero_image", "image/png", []byte("test"), func(url string) {
			done <- url
		})
		assert.Equal(t, uint64(1), token)

		select {
		case url := <-done:
			assert.Equal(t, "data:image/png;base64,dGVzdA==", url)
		case <-time.After(time.Second):
			t.Fatal("encode never delivered")
		}
	})

	t.Run("a newer upload supersedes a pending one", func(t *testing.T) {
		e := NewDataURLEncoder(zap.NewNop())
		got := &deliveries{}
		done := make(chan struct{}, 1)

		// a large payload keeps the first encode busy past the second request
		large := bytes.Repeat([]byte("x"), 8<<20)
		e.Encode(context.Background(), "hero_image", "image/jpeg", large, func(url string) {
			got.add(url)
		})
		e.Encode(context.Background(), "hero_image", "image/png", []byte("test"), func(url string) {
			got.add(url)
			done <- struct{}{}
		})

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("encode never delivered")
		}
		time.Sleep(50 * time.Millisecond)

		urls := got.snapshot()
		require.Len(t, urls, 1)
		assert.Equal(t, "data:image/png;base64,dGVzdA==", urls[0])
	})

	t.Run("slots are independent", func(t *testing.T) {
		e := NewDataURLEncoder(zap.NewNop())
		got := &deliveries{}
		var wg sync.WaitGroup
		wg.Add(2)

		e.Encode(context.Background(), "hero_image", "image/png", []byte("a"), func(url string) {
			got.add(url)
			wg.Done()
		})
		e.Encode(context.Background(), "universe_image", "image/png", []byte("b"), func(url string) {
			got.add(url)
			wg.Done()
		})

		waited := make(chan struct{})
		go func() {
			wg.Wait()
			close(waited)
		}()
		select {
		case <-waited:
		case <-time.After(time.Second):
			t.Fatal("encodes never delivered")
		}
		assert.Len(t, got.snapshot(), 2)
	})

	t.Run("a cancelled context drops the delivery", func(t *testing.T) {
		e := NewDataURLEncoder(zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		delivered := make(chan struct{}, 1)
		e.Encode(ctx, "hero_image", "image/png", []byte("test"), func(string) {
			delivered <- struct{}{}
		})

		select {
		case <-delivered:
			t.Fatal("delivery should have been dropped")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
