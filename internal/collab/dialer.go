package collab

import (
	"context"
	"net"
	"time"
)

// DefaultRelayEndpoints is the ordered relay list tried by session hosts.
// Override with SKILLFORGE_RELAYS (comma separated) at the CLI layer.
var DefaultRelayEndpoints = []string{
	"relay1.skillforge.dev:9443",
	"relay2.skillforge.dev:9443",
	"relay-fallback.skillforge.dev:9443",
}

// NetDialer dials relay endpoints over TCP.
type NetDialer struct {
	Timeout time.Duration
}

var _ Dialer = (*NetDialer)(nil)

// NewNetDialer creates a TCP dialer with a per-attempt timeout.
func NewNetDialer(timeout time.Duration) *NetDialer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NetDialer{Timeout: timeout}
}

func (d *NetDialer) Dial(ctx context.Context, endpoint string) (Conn, error) {
	dialer := net.Dialer{Timeout: d.Timeout}
	c, err := dialer.DialContext(ctx, "tcp", endpoint)
	if err != nil {
		return nil, err
	}
	return &netConn{endpoint: endpoint, conn: c}, nil
}

type netConn struct {
	endpoint string
	conn     net.Conn
}

func (c *netConn) Endpoint() string { return c.endpoint }
func (c *netConn) Close() error     { return c.conn.Close() }
