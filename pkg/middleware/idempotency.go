package middleware

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"artstudio-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

const (
	IdempotencyHeader    = "Idempotency-Key"
	idempotencyPrefix    = "idempotency:"
	maxIdempotentBody    = 1 << 20
	defaultIdempotentTTL = 24 * time.Hour
)

// idempotencyRecord is what is kept under a key. Status 0 means the first
// request is still running.
type idempotencyRecord struct {
	RequestHash string `json:"requestHash"`
	Status      int    `json:"status"`
	Body        []byte `json:"body,omitempty"`
}

// Idempotency replays the stored response for a repeated Idempotency-Key.
// A key reused with a different body, or while the first request is still
// running, is answered with 409. Requests without the header pass through.
// Failed requests do not hold on to their key.
func Idempotency(rdb redis.Cmdable, ttl time.Duration, log *zap.Logger) func(http.Handler) http.Handler {
	if ttl <= 0 {
		ttl = defaultIdempotentTTL
	}
	log = log.With(zap.String("middleware", "idempotency"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxIdempotentBody))
			if err != nil {
				utils.ResponseBadRequest(w, "Failed to read request body", nil)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
			ctx := utils.SetIdempotencyKey(r.Context(), key)
			r = r.WithContext(ctx)

			redisKey := idempotencyPrefix + key
			hash := requestHash(r, body)
			pending, _ := json.Marshal(idempotencyRecord{RequestHash: hash})

			acquired, err := rdb.SetNX(ctx, redisKey, pending, ttl).Result()
			if err != nil {
				log.Warn("Idempotency store unavailable, passing through",
					zap.Error(err),
					zap.String("key", key),
				)
				next.ServeHTTP(w, r)
				return
			}

			if acquired {
				serveAndRecord(ctx, rdb, redisKey, hash, next, w, r, log)
				return
			}

			raw, err := rdb.Get(ctx, redisKey).Bytes()
			if errors.Is(err, redis.Nil) {
				utils.ResponseConflict(w, "Idempotency-Key expired, please try again", nil)
				return
			}
			if err != nil {
				log.Error("Failed to read idempotency record", zap.Error(err), zap.String("key", key))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			var existing idempotencyRecord
			if err := json.Unmarshal(raw, &existing); err != nil {
				log.Error("Corrupt idempotency record", zap.Error(err), zap.String("key", key))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			switch {
			case existing.RequestHash != hash:
				utils.ResponseConflict(w, "Idempotency-Key was already used for a different request", nil)
			case existing.Status == 0:
				utils.ResponseConflict(w, "A request with this Idempotency-Key is still in progress", nil)
			default:
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Idempotent-Replayed", "true")
				w.WriteHeader(existing.Status)
				w.Write(existing.Body)
			}
		})
	}
}

// serveAndRecord runs next and keeps its response under redisKey. Only
// successes and conflicts are kept. Any other outcome, a panic included,
// releases the key so the client can retry with it.
func serveAndRecord(ctx context.Context, rdb redis.Cmdable, redisKey, hash string, next http.Handler, w http.ResponseWriter, r *http.Request, log *zap.Logger) {
	storeCtx := context.WithoutCancel(ctx)
	defer func() {
		if p := recover(); p != nil {
			releaseKey(storeCtx, rdb, redisKey, log)
			panic(p)
		}
	}()

	rec := newCaptureWriter(w)
	next.ServeHTTP(rec, r)

	if rec.status/100 != 2 && rec.status != http.StatusConflict {
		releaseKey(storeCtx, rdb, redisKey, log)
		return
	}

	done, _ := json.Marshal(idempotencyRecord{
		RequestHash: hash,
		Status:      rec.status,
		Body:        rec.body.Bytes(),
	})
	if err := rdb.Set(storeCtx, redisKey, done, redis.KeepTTL).Err(); err != nil {
		log.Warn("Failed to store idempotent response",
			zap.Error(err),
			zap.String("key", redisKey),
		)
	}
}

func releaseKey(ctx context.Context, rdb redis.Cmdable, redisKey string, log *zap.Logger) {
	if err := rdb.Del(ctx, redisKey).Err(); err != nil {
		log.Warn("Failed to release idempotency key", zap.Error(err), zap.String("key", redisKey))
	}
}

// requestHash fingerprints method, path and body.
func requestHash(r *http.Request, body []byte) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(r.Method))
	h.Write([]byte{0})
	h.Write([]byte(r.URL.Path))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// captureWriter tees the response so it can be stored.
type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{ResponseWriter: w, status: http.StatusOK}
}

func (c *captureWriter) WriteHeader(code int) {
	c.status = code
	c.ResponseWriter.WriteHeader(code)
}

func (c *captureWriter) Write(b []byte) (int, error) {
	c.body.Write(b)
	return c.ResponseWriter.Write(b)
}
