package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sablemoor/RitualBot_Go/internal/logger"
)

// AuthMiddleware validates API key
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Allow public access to documentation and health check endpoints
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				log := logger.FromContext(r.Context())
				log.Warn("Authentication failed",
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector tracks and alerts on suspicious patterns
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	lastResetTime    time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		lastResetTime:    time.Now(),
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.failedAuthByIP[ip]++

	if s.failedAuthByIP[ip] >= 5 {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", s.failedAuthByIP[ip])
	}
}

// RecordRequest records a request for rate monitoring and returns false if
// the rate limit is exceeded (1000 req / 5 min per IP).
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.requestCountByIP[ip]++

	if s.requestCountByIP[ip] > 1000 {
		if s.requestCountByIP[ip]%100 == 0 { // log every 100 requests to avoid spam
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_5min", s.requestCountByIP[ip])
		}
		return false
	}
	return true
}

// resetCountsIfNeeded resets counters if the time window has passed.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) resetCountsIfNeeded() {
	if time.Since(s.lastResetTime) > 5*time.Minute {
		s.requestCountByIP = make(map[string]int)
		s.failedAuthByIP = make(map[string]int)
		s.lastResetTime = time.Now()
	}
}

// RateLimitMiddleware enforces the per-IP request rate via the detector.
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !detector.RecordRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	// For X-Forwarded-For: client, proxy1, proxy2 - we want the rightmost
	// IP, since we trust the proxy to accurately report the previous hop.
	if isTrusted {
		forwarded := r.Header.Get(HeaderForwardedFor)
		if forwarded != "" {
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
