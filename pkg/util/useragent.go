package util

import (
	"net"
	"strings"
)

// Device classes recorded in visitor logs.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
	DeviceBot     = "bot"
)

// ClientInfo is the coarse classification derived from a User-Agent header.
type ClientInfo struct {
	Device  string
	Browser string
	OS      string
}

// ClassifyUserAgent derives device, browser and OS from a raw User-Agent
// string. Token matching order matters: Edge and Opera embed "Chrome",
// Chrome embeds "Safari", iPads report "Mobile".
func ClassifyUserAgent(ua string) ClientInfo {
	uaLower := strings.ToLower(ua)

	info := ClientInfo{
		Device:  DeviceDesktop,
		Browser: "Other",
		OS:      "Other",
	}

	switch {
	case containsAny(uaLower, "bot", "crawler", "spider", "curl", "wget"):
		info.Device = DeviceBot
	case containsAny(uaLower, "ipad", "tablet"):
		info.Device = DeviceTablet
	case containsAny(uaLower, "mobi", "iphone", "android"):
		info.Device = DeviceMobile
	}

	switch {
	case strings.Contains(uaLower, "edg/"), strings.Contains(uaLower, "edge"):
		info.Browser = "Edge"
	case strings.Contains(uaLower, "opr/"), strings.Contains(uaLower, "opera"):
		info.Browser = "Opera"
	case strings.Contains(uaLower, "samsungbrowser"):
		info.Browser = "Samsung Internet"
	case strings.Contains(uaLower, "firefox"):
		info.Browser = "Firefox"
	case strings.Contains(uaLower, "chrome"), strings.Contains(uaLower, "crios"):
		info.Browser = "Chrome"
	case strings.Contains(uaLower, "safari"):
		info.Browser = "Safari"
	}

	switch {
	case strings.Contains(uaLower, "windows"):
		info.OS = "Windows"
	case strings.Contains(uaLower, "android"):
		info.OS = "Android"
	case containsAny(uaLower, "iphone", "ipad", "ipod"):
		info.OS = "iOS"
	case containsAny(uaLower, "mac os", "macintosh"):
		info.OS = "macOS"
	case strings.Contains(uaLower, "linux"):
		info.OS = "Linux"
	}

	return info
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// CoarsenIP anonymizes a client address before storage: the last octet of
// an IPv4 address is zeroed, an IPv6 address is truncated to its /48
// prefix. Unparseable input comes back empty.
func CoarsenIP(addr string) string {
	ip := net.ParseIP(strings.TrimSpace(addr))
	if ip == nil {
		return ""
	}

	if v4 := ip.To4(); v4 != nil {
		return v4.Mask(net.CIDRMask(24, 32)).String()
	}
	return ip.Mask(net.CIDRMask(48, 128)).String()
}
