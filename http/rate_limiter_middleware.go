package http

import (
	"net"
	"net/http"
)

// RateLimit devolve um middleware chi que barra clientes sem fichas no
// limitador. Quando o endereço remoto não tem porta (testes, proxies), o
// valor bruto vira a chave do balde.
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.Allow(ip) {
				writeError(w, http.StatusTooManyRequests, "limite de requisições excedido")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
