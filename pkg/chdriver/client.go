package chdriver

import (
	"context"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2"
	chdriverlib "github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/engine"
)

// Client is an engine.EngineDriver backed by a single clickhouse-go/v2
// connection. The zero value is not usable; build one with NewClient.
type Client struct {
	dsn string

	mu   sync.Mutex
	conn chdriverlib.Conn
}

// NewClient builds a Client for the given DSN ("host:port", e.g.
// "localhost:9000"). The connection isn't opened until Connect is
// called.
func NewClient(dsn string) *Client {
	return &Client{dsn: dsn}
}

// Connect opens the underlying connection and pings it. Calling Connect
// on an already-connected Client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return nil
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{c.dsn},
	})
	if err != nil {
		return errors.Wrap(engine.ErrDriver, err.Error())
	}
	if err := conn.Ping(ctx); err != nil {
		return errors.Wrapf(engine.ErrDriver, "ping %s: %s", c.dsn, err)
	}

	c.conn = conn
	return nil
}

// Disconnect closes the underlying connection, if open.
func (c *Client) Disconnect(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	if err != nil {
		return errors.Wrap(engine.ErrDriver, err.Error())
	}
	return nil
}

// IsConnected reports whether Connect has succeeded and Disconnect
// hasn't been called since.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// EngineTag identifies this driver as talking to ClickHouse.
func (c *Client) EngineTag() engine.Tag {
	return engine.ClickHouse
}

// Begin, Commit, and Rollback are no-ops: ClickHouse has no
// general-purpose multi-statement transaction support, so this driver
// treats every statement as auto-committed, per the no-op allowance in
// engine.EngineDriver's contract.
func (c *Client) Begin(context.Context) error    { return nil }
func (c *Client) Commit(context.Context) error   { return nil }
func (c *Client) Rollback(context.Context) error { return nil }

// ExecuteQuery runs a statement that returns no rows.
func (c *Client) ExecuteQuery(ctx context.Context, sql string, args ...any) error {
	conn, err := c.connection()
	if err != nil {
		return err
	}
	if err := conn.Exec(ctx, sql, args...); err != nil {
		return errors.Wrapf(engine.ErrDriver, "exec: %s", err)
	}
	return nil
}

func (c *Client) connection() (chdriverlib.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, errors.Wrap(engine.ErrDriver, "chdriver: not connected")
	}
	return c.conn, nil
}
