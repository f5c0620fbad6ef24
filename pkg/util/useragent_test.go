package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want ClientInfo
	}{
		{
			name: "Chrome on Windows desktop",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			want: ClientInfo{Device: DeviceDesktop, Browser: "Chrome", OS: "Windows"},
		},
		{
			name: "Safari on iPhone",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			want: ClientInfo{Device: DeviceMobile, Browser: "Safari", OS: "iOS"},
		},
		{
			name: "Safari on iPad",
			ua:   "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
			want: ClientInfo{Device: DeviceTablet, Browser: "Safari", OS: "iOS"},
		},
		{
			name: "Chrome on Android phone",
			ua:   "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			want: ClientInfo{Device: DeviceMobile, Browser: "Chrome", OS: "Android"},
		},
		{
			name: "Firefox on Linux",
			ua:   "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			want: ClientInfo{Device: DeviceDesktop, Browser: "Firefox", OS: "Linux"},
		},
		{
			name: "Edge on Windows",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
			want: ClientInfo{Device: DeviceDesktop, Browser: "Edge", OS: "Windows"},
		},
		{
			name: "Safari on macOS",
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
			want: ClientInfo{Device: DeviceDesktop, Browser: "Safari", OS: "macOS"},
		},
		{
			name: "Googlebot",
			ua:   "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			want: ClientInfo{Device: DeviceBot, Browser: "Other", OS: "Other"},
		},
		{
			name: "Empty user agent",
			ua:   "",
			want: ClientInfo{Device: DeviceDesktop, Browser: "Other", OS: "Other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUserAgent(tt.ua))
		})
	}
}

func TestCoarsenIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		want string
	}{
		{name: "IPv4 keeps /24", ip: "203.0.113.42", want: "203.0.113.0"},
		{name: "IPv4 already masked", ip: "10.0.0.0", want: "10.0.0.0"},
		{name: "IPv6 keeps /48", ip: "2001:db8:1234:5678::1", want: "2001:db8:1234::"},
		{name: "Unparseable", ip: "not-an-ip", want: ""},
		{name: "Empty", ip: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoarsenIP(tt.ip))
		})
	}
}
