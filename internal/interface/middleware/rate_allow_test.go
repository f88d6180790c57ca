package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAllowPrivateIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	allow := AllowPrivateIP()

	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"loopback v4", "127.0.0.1", true},
		{"loopback v6", "::1", true},
		{"private 10/8", "10.1.2.3", true},
		{"private 172.16/12", "172.16.0.9", true},
		{"private 192.168/16", "192.168.1.5", true},
		{"public v4", "8.8.8.8", false},
		{"public v6", "2001:4860:4860::8888", false},
		{"unparsable", "not-an-ip", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Set("real_ip", tt.ip)
			if got := allow(c); got != tt.want {
				t.Errorf("AllowPrivateIP()(%s) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}
}
