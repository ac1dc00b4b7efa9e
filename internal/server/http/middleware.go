package internalhttp

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const sessionCookie = "session"

type contextKey string

const usernameKey contextKey = "username"

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		ip, err := getIP(r)
		if err != nil {
			log.Errorf("failed to get client IP: %v", err)
		}
		log.WithField("ip", ip).WithField("method", r.Method).WithField("path", r.URL).
			WithField("HTTP version", r.Proto).WithField("user-agent", r.Header.Get("user-agent")).
			WithField("latency", time.Since(start)).
			Info("http request processed")
	})
}

// requireAPI gates JSON routes: without a session the caller gets a 401
// error body a fetch() caller can act on.
func (s *Server) requireAPI(next http.HandlerFunc) http.Handler {
	return s.requireSession(next, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "authentication required")
	})
}

// requirePage gates HTML routes: without a session the browser is sent to
// the login form.
func (s *Server) requirePage(next http.HandlerFunc) http.Handler {
	return s.requireSession(next, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})
}

func (s *Server) requireSession(next, reject http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.sessions == nil {
			next(w, r)
			return
		}
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			reject(w, r)
			return
		}
		username, err := s.sessions.User(cookie.Value)
		if err != nil {
			reject(w, r)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), usernameKey, username)))
	})
}

func currentUser(r *http.Request) string {
	if username, ok := r.Context().Value(usernameKey).(string); ok {
		return username
	}
	return ""
}
