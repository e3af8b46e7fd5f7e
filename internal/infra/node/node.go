package node

import (
	"log/slog"
	"net"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// Node identifies the running API replica in logs and telemetry.
type Node struct {
	ID         string
	IPAddress  string
	Version    string
	CommitHash string
}

// Version and CommitHash are set at build time with -ldflags.
var Version = "development"
var CommitHash = "unknown"

var (
	nodeID     string
	nodeIDOnce sync.Once
	nodeIP     string
	nodeIPOnce sync.Once
)

func Current() *Node {
	return &Node{
		ID:         getNodeID(),
		IPAddress:  getNodeIPAddress(),
		Version:    Version,
		CommitHash: CommitHash,
	}
}

// LogAttrs are attached to every log line of the process.
func (n *Node) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("version", n.Version),
		slog.String("node_id", n.ID),
	}
}

func (n *Node) ResourceAttrs(serviceName string) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(n.Version),
		semconv.ServiceInstanceIDKey.String(n.ID),
		attribute.String("service.commit", n.CommitHash),
		attribute.String("host.ip", n.IPAddress),
	}
}

func getNodeID() string {
	nodeIDOnce.Do(func() {
		nodeID = uuid.New().String()
	})
	return nodeID
}

func getNodeIPAddress() string {
	nodeIPOnce.Do(func() {
		nodeIP = outboundIP()
	})
	return nodeIP
}

// outboundIP asks the kernel which local address routes to the internet. No
// packet is sent for a UDP dial.
func outboundIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String()
}
