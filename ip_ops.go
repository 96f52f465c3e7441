package main

import (
	"net"
	"strings"
)

func IsValidIP(ipAddress string) bool {
	return net.ParseIP(strings.TrimSpace(ipAddress)) != nil
}
