package api

import (
	"bytes"
	"crypto/rsa"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang-jwt/jwt/v4/request"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

const maxLoggedBody = 1024

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

// TerminalClaims are issued to payment kiosks and cashier stations.
type TerminalClaims struct {
	jwt.RegisteredClaims
	TerminalID string `json:"terminal_id"`
}

type Middleware struct {
	jwtEnabled    bool
	publicKey     *rsa.PublicKey
	apiKeyEnabled bool
	apiKey        string
}

func NewMiddleware(jwtEnabled bool, publicKey *rsa.PublicKey, apiKeyEnabled bool, apiKey string) *Middleware {
	return &Middleware{
		jwtEnabled:    jwtEnabled,
		publicKey:     publicKey,
		apiKeyEnabled: apiKeyEnabled,
		apiKey:        apiKey,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			body := "<multipart>"

			if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
				reqBody, err := io.ReadAll(r.Body)
				if err != nil {
					SendJSONErr(ctx, w, http.StatusBadRequest, err, "Не удалось прочитать тело запроса")
					return
				}

				r.Body.Close()
				r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

				body = string(reqBody)
				if len(body) > maxLoggedBody {
					body = body[:maxLoggedBody] + "..."
				}
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
				"body", body,
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), "Внутренняя ошибка")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, X-Api-Key, X-Request-Id")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// TerminalAuth verifies the RS256 bearer token of a terminal.
func (m *Middleware) TerminalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !m.jwtEnabled {
			next.ServeHTTP(w, r)
			return
		}

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Токен отсутствует или невалиден")
			return
		}

		terminal, err := m.parseTerminal(token)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Неверный токен")
			return
		}

		ctx = entity.CtxWithTerminal(ctx, terminal)
		ctx = logger.WithTerminalID(ctx, terminal.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) parseTerminal(token string) (entity.Terminal, error) {
	if m.publicKey == nil {
		return entity.Terminal{}, fmt.Errorf("%w: no public key configured", entity.ErrUnauthenticated)
	}

	var claims TerminalClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return m.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.Terminal{}, fmt.Errorf("%w: token expired", entity.ErrUnauthenticated)
		}

		return entity.Terminal{}, fmt.Errorf("%w: parse token: %w", entity.ErrUnauthenticated, err)
	}

	if !parsed.Valid {
		return entity.Terminal{}, fmt.Errorf("%w: invalid token", entity.ErrUnauthenticated)
	}

	id := claims.TerminalID
	if id == "" {
		id = claims.Subject
	}

	if id == "" {
		return entity.Terminal{}, fmt.Errorf("%w: token has no terminal id", entity.ErrUnauthenticated)
	}

	return entity.Terminal{ID: id}, nil
}

// APIKeyAuth verifies incoming API key.
func (m *Middleware) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !m.apiKeyEnabled {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get("X-Api-Key")
		if apiKey == "" {
			SendJSONErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthenticated, "Отсутствует API ключ")
			return
		}

		if apiKey != m.apiKey {
			SendJSONErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthenticated, "Неверный API ключ")
			return
		}

		next.ServeHTTP(w, r)
	})
}
