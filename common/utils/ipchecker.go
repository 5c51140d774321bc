package utils

import (
	"net"
	"strings"
)

// IPChecker 檢查 ip 是否在白名單內，白名單以逗號分隔，可為單一 IP 或 CIDR
func IPChecker(myip string, whitelist string) bool {

	if myip == "localhost" || myip == "127.0.0.1" || myip == "::1" {
		return true
	}

	if whitelist == "" {
		return false
	}

	ipB := net.ParseIP(strings.TrimSpace(myip))
	if ipB == nil {
		return false
	}

	for _, ip := range strings.Split(whitelist, ",") {
		ip = strings.TrimSpace(ip)
		if ip == "" {
			continue
		}
		if !strings.Contains(ip, "/") {
			if strings.Contains(ip, ":") {
				ip = ip + "/128"
			} else {
				ip = ip + "/32"
			}
		}
		_, ipnetA, _ := net.ParseCIDR(ip)
		if ipnetA == nil {
			continue
		}

		if ipnetA.Contains(ipB) {
			return true
		}
	}
	return false
}
