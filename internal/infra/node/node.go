package node

import (
	"net"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Info identifies the running crm server process in health checks and logs.
type Info struct {
	ID         string
	Hostname   string
	IPAddress  string
	Version    string
	CommitHash string
}

// Set with -ldflags at build time.
var (
	Version    = "development"
	CommitHash = "unknown"
)

var (
	processID   = sync.OnceValue(uuid.NewString)
	hostname    = sync.OnceValue(lookupHostname)
	interfaceIP = sync.OnceValue(lookupInterfaceIP)
)

// GetNodeInfo returns the identity of this process. The id is generated once
// and kept until exit.
func GetNodeInfo() *Info {
	return &Info{
		ID:         processID(),
		Hostname:   hostname(),
		IPAddress:  interfaceIP(),
		Version:    Version,
		CommitHash: CommitHash,
	}
}

func lookupHostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return name
}

// lookupInterfaceIP prefers the first global unicast IPv4 address of a local
// interface and falls back to loopback.
func lookupInterfaceIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		if ip := ipNet.IP.To4(); ip != nil && ip.IsGlobalUnicast() {
			return ip.String()
		}
	}
	return "127.0.0.1"
}
