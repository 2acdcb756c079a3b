package middleware

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"
)

// bufferedResponse holds a handler's response until the handler returns.
// Once expired it rejects every write, so a late handler cannot touch the
// client connection.
type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header)}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expired || b.status != 0 {
		return
	}
	b.status = code
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = true
}

// commit copies the buffered status, headers and body to w.
func (b *bufferedResponse) commit(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	dst := w.Header()
	for key, values := range b.header {
		dst[key] = values
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	w.WriteHeader(b.status)
	_, _ = b.body.WriteTo(w)
}

// RequestTimeout bounds each request by timeout. Handlers see the deadline
// through r.Context(); a handler still running when it fires gets its
// response discarded and the client receives 503.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buffered := newBufferedResponse()
			finished := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
						return
					}
					close(finished)
				}()
				next.ServeHTTP(buffered, r.WithContext(ctx))
			}()

			select {
			case <-finished:
				buffered.commit(w)
			case p := <-panicked:
				// re-raised on the serving goroutine so Recovery can answer
				panic(p)
			case <-ctx.Done():
				buffered.expire()
				writeJSONError(w, http.StatusServiceUnavailable, "Request timeout")
			}
		})
	}
}
