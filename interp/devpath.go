package interp

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// devNetPath describes a parsed /dev/tcp/HOST/PORT or /dev/udp/HOST/PORT
// virtual redirection target.
type devNetPath struct {
	network string // "tcp" or "udp"
	host    string
	port    int
}

// parseDevNetPath recognizes the bash-style virtual network redirection
// paths. It returns ok=false for any path that isn't one of these two
// forms, letting the caller fall back to regular file opening.
func parseDevNetPath(path string) (d devNetPath, ok bool) {
	var rest, network string
	switch {
	case strings.HasPrefix(path, "/dev/tcp/"):
		network, rest = "tcp", strings.TrimPrefix(path, "/dev/tcp/")
	case strings.HasPrefix(path, "/dev/udp/"):
		network, rest = "udp", strings.TrimPrefix(path, "/dev/udp/")
	default:
		return devNetPath{}, false
	}

	var host, portStr string
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 || !strings.HasPrefix(rest[end+1:], "/") {
			return devNetPath{}, false
		}
		host = rest[1:end]
		portStr = rest[end+2:]
	} else {
		idx := strings.LastIndex(rest, "/")
		if idx < 0 {
			return devNetPath{}, false
		}
		host, portStr = rest[:idx], rest[idx+1:]
	}
	if host == "" || portStr == "" {
		return devNetPath{}, false
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return devNetPath{}, false
	}
	return devNetPath{network: network, host: host, port: port}, true
}

// dialDevNetPath opens the connection a /dev/tcp or /dev/udp redirection
// target names, returning something that satisfies io.ReadWriteCloser like
// any other redirection target the executor opens.
func dialDevNetPath(ctx context.Context, d devNetPath) (net.Conn, error) {
	addr := net.JoinHostPort(d.host, strconv.Itoa(d.port))
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, d.network, addr)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}
	return conn, nil
}
