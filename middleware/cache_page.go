package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/yatube/cache"
)

// bodyRecorder tees the response body so it can be stored after the handler ran.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves anonymous GET responses from store for ttl. Keys are prefix + ":" + request URI,
// so every anonymous visitor shares the same copy of a page. Pages rendered for a signed in user
// carry that user's navigation and are never cached. Only 200 responses are stored.
// A ttl below one second disables caching.
func CachePage(store cache.Store, prefix string, ttl time.Duration) gin.HandlerFunc {
	if ttl < time.Second {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet || CurrentUser(ctx) != nil {
			ctx.Next()
			return
		}
		key := CacheKey(prefix, ctx.Request.URL.RequestURI())
		if body, ok := store.Get(ctx.Request.Context(), key); ok {
			ctx.Header("X-Cache", "HIT")
			ctx.Data(http.StatusOK, "text/html; charset=utf-8", body)
			ctx.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: ctx.Writer}
		ctx.Writer = rec
		ctx.Header("X-Cache", "MISS")
		ctx.Next()
		ctx.Writer = rec.ResponseWriter

		if rec.Status() == http.StatusOK && len(ctx.Errors) == 0 {
			store.Set(ctx.Request.Context(), key, rec.body.Bytes(), ttl)
		}
	}
}

// CacheKey is the store key of uri under prefix.
func CacheKey(prefix, uri string) string {
	return prefix + ":" + uri
}
