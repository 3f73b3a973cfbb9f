package middleware

import (
	"github.com/gin-gonic/gin"
)

// forwardingHeaders are read, in order, when the request arrives through a
// trusted proxy.
var forwardingHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// TrustProxies limits which peers may report the client address through
// forwarding headers. With no proxies configured the headers are ignored and
// the socket address is used, so clients cannot pick their own rate-limit key.
func TrustProxies(r *gin.Engine, proxies []string) error {
	r.RemoteIPHeaders = forwardingHeaders
	if len(proxies) == 0 {
		return r.SetTrustedProxies(nil)
	}
	return r.SetTrustedProxies(proxies)
}

// getClientIP walks X-Forwarded-For from the right past trusted proxies and
// falls back to X-Real-IP, then the remote address.
func getClientIP(c *gin.Context) string {
	return c.ClientIP()
}
