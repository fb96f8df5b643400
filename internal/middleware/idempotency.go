package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/forgo/learnledger/api/internal/model"
)

// encodingHeaders belong to the transport of one response and are not replayed
var encodingHeaders = []string{"Content-Encoding", "Content-Length", "Vary"}

const (
	idempotencyHeader = "Idempotency-Key"
	replayedHeader    = "X-Idempotency-Replayed"
	maxIdempotentBody = 1 << 20
)

// IdempotencyStore remembers responses to requests carrying an Idempotency-Key
type IdempotencyStore struct {
	mu       sync.Mutex
	entries  map[string]*idempotencyEntry
	ttl      time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

type idempotencyEntry struct {
	key       string
	status    int
	headers   http.Header
	body      []byte
	expiresAt time.Time
	abandoned bool          // no response kept; waiters start over
	done      chan struct{} // closed once the response is recorded or abandoned
}

// IdempotencyConfig holds configuration for idempotency middleware
type IdempotencyConfig struct {
	TTL     time.Duration // How long to keep responses (default 24h)
	Cleanup time.Duration // Cleanup interval (default 1h)
}

// NewIdempotencyStore creates a new idempotency store and starts its cleanup loop
func NewIdempotencyStore(cfg IdempotencyConfig) *IdempotencyStore {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Cleanup <= 0 {
		cfg.Cleanup = time.Hour
	}

	s := &IdempotencyStore{
		entries:  make(map[string]*idempotencyEntry),
		ttl:      cfg.TTL,
		stopChan: make(chan struct{}),
	}
	go s.cleanupLoop(cfg.Cleanup)
	return s
}

// Stop stops the cleanup goroutine
func (s *IdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

func (s *IdempotencyStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expire(time.Now())
		case <-s.stopChan:
			return
		}
	}
}

func (s *IdempotencyStore) expire(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if e.recorded() && e.expiresAt.Before(now) {
			delete(s.entries, key)
		}
	}
}

func (e *idempotencyEntry) recorded() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// begin returns the entry for key and whether the caller must produce the
// response. Followers wait on entry.done.
func (s *IdempotencyStore) begin(key string, now time.Time) (*idempotencyEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok && (!e.recorded() || e.expiresAt.After(now)) {
		return e, false
	}
	e := &idempotencyEntry{key: key, done: make(chan struct{})}
	s.entries[key] = e
	return e, true
}

// abandon forgets an entry whose handler panicked or failed, so the next
// request with the same key runs the handler again.
func (s *IdempotencyStore) abandon(e *idempotencyEntry) {
	s.mu.Lock()
	if s.entries[e.key] == e {
		delete(s.entries, e.key)
	}
	e.abandoned = true
	s.mu.Unlock()
	close(e.done)
}

func (s *IdempotencyStore) finish(e *idempotencyEntry, rec *captureWriter) {
	s.mu.Lock()
	e.status = rec.status
	e.headers = rec.Header().Clone()
	for _, h := range encodingHeaders {
		e.headers.Del(h)
	}
	e.body = rec.body.Bytes()
	e.expiresAt = time.Now().Add(s.ttl)
	s.mu.Unlock()
	close(e.done)
}

// fingerprint binds a key to the client and the exact request
func fingerprint(client, idempotencyKey, method, path string, body []byte) string {
	h := sha256.New()
	for _, part := range []string{client, idempotencyKey, method, path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// captureWriter tees the response into a buffer
type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func replay(w http.ResponseWriter, e *idempotencyEntry) {
	for k, v := range e.headers {
		for _, val := range v {
			w.Header().Add(k, val)
		}
	}
	w.Header().Set(replayedHeader, "true")
	w.WriteHeader(e.status)
	_, _ = w.Write(e.body)
}

// Idempotency replays the stored response for POST and PUT requests that
// repeat an Idempotency-Key with the same body. Concurrent duplicates wait
// for the first request to finish. Responses with a 5xx status, and requests
// whose handler panics, are not kept.
func Idempotency(store *IdempotencyStore) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idempotencyKey := r.Header.Get(idempotencyHeader)
			if idempotencyKey == "" || (r.Method != http.MethodPost && r.Method != http.MethodPut) {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxIdempotentBody))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					model.NewPayloadTooLargeError(tooLarge.Limit).WriteJSON(w)
					return
				}
				model.NewBadRequestError("failed to read request body").WriteJSON(w)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			key := fingerprint(ClientKey(r), idempotencyKey, r.Method, r.URL.Path, body)
			var entry *idempotencyEntry
			for {
				e, leader := store.begin(key, time.Now())
				if leader {
					entry = e
					break
				}
				select {
				case <-e.done:
					if !e.abandoned {
						replay(w, e)
						return
					}
				case <-r.Context().Done():
					return
				}
			}

			rec := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			completed := false
			defer func() {
				if completed && rec.status < http.StatusInternalServerError {
					store.finish(entry, rec)
					return
				}
				store.abandon(entry)
			}()
			next.ServeHTTP(rec, r)
			completed = true
		})
	}
}
