package handler

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"go.uber.org/zap"
)

type Middleware func(http.Handler) http.Handler

// Chain применяет middleware так, что первый в списке выполняется первым
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// TokenVerifier проверяет bearer токен и возвращает владельца. Реализуется auth.TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Owner определяет владельца запроса. Без заголовка Authorization используется
// владелец по умолчанию, недействительный токен дает 401.
func Owner(verifier TokenVerifier, defaultOwnerID string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID := defaultOwnerID

			if header := r.Header.Get("Authorization"); header != "" {
				token, found := strings.CutPrefix(header, "Bearer ")
				if !found || strings.TrimSpace(token) == "" {
					writeError(w, http.StatusUnauthorized, "invalid authorization header")
					return
				}
				id, err := verifier.Verify(strings.TrimSpace(token))
				if err != nil {
					writeError(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				ownerID = id
			}

			next.ServeHTTP(w, r.WithContext(domain.WithOwner(r.Context(), ownerID)))
		})
	}
}

// CORS разрешает запросы с любого origin, включая запросы с учетными данными
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}
			w.Header().Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func Recover(logger *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func RequestLogger(logger *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func ownerID(r *http.Request) (string, error) {
	id, ok := domain.OwnerFromContext(r.Context())
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}
