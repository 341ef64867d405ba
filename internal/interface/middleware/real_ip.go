package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIPKey holds the client address used for rate limiting.
const RealIPKey = "real_ip"

// proxyHeaders are consulted in order; X-Forwarded-For contributes its
// left-most entry.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For"}

// RealIP stores the client address under RealIPKey, preferring proxy
// headers that parse as an IP and falling back to gin's ClientIP.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(RealIPKey, headerIP(c))
		c.Next()
	}
}

func headerIP(c *gin.Context) string {
	for _, h := range proxyHeaders {
		v, _, _ := strings.Cut(c.GetHeader(h), ",")
		if ip := net.ParseIP(strings.TrimSpace(v)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}
