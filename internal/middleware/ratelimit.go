package middleware

import (
	"encoding/json"
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"penguin-pet/internal/observability"
)

const shardCount = 16

// RateLimiter es una ventana fija por clave (userID): N requests cada window.
// Estado solo en memoria del proceso; con varias réplicas cada una aplica su propio límite.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	shards [shardCount]*limiterShard

	stopOnce sync.Once
	stop     chan struct{}
}

type limiterShard struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

// NewRateLimiter crea el limiter. limit <= 0 lo deshabilita (todo pasa).
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	rl := &RateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{entries: make(map[string]*windowEntry)}
	}
	return rl
}

// Enabled indica si el limiter aplica algún límite.
func (rl *RateLimiter) Enabled() bool {
	return rl != nil && rl.limit > 0
}

// Allow registra un intento para key. Si se pasó del límite devuelve false y
// los segundos (redondeados hacia arriba) hasta que la ventana se reinicia.
func (rl *RateLimiter) Allow(key string) (bool, int) {
	if !rl.Enabled() {
		return true, 0
	}

	now := rl.now()
	sh := rl.shard(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	e, ok := sh.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &windowEntry{resetAt: now.Add(rl.window)}
		sh.entries[key] = e
	}
	e.count++

	if e.count > rl.limit {
		retry := int(math.Ceil(e.resetAt.Sub(now).Seconds()))
		if retry < 1 {
			retry = 1
		}
		return false, retry
	}
	return true, 0
}

// Sweep borra ventanas ya vencidas. Devuelve cuántas eliminó.
func (rl *RateLimiter) Sweep() int {
	now := rl.now()
	removed := 0
	for _, sh := range rl.shards {
		sh.mu.Lock()
		for k, e := range sh.entries {
			if !now.Before(e.resetAt) {
				delete(sh.entries, k)
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed
}

// StartSweeper limpia periódicamente hasta que se llame Stop.
func (rl *RateLimiter) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = rl.window
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-rl.stop:
				return
			case <-ticker.C:
				rl.Sweep()
			}
		}
	}()
}

// Stop termina el sweeper. Idempotente.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

type rateLimitedResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

// PerUser limita por usuario autenticado. Requests anónimos pasan (el handler responde 401).
func (rl *RateLimiter) PerUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserID(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			allowed, retryAfter := rl.Allow(userID)
			if !allowed {
				observability.RecordRateLimited()
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(rateLimitedResponse{
					Error:      "Too many requests. Please slow down.",
					RetryAfter: retryAfter,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) shard(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%shardCount]
}
