package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
)

// Client wraps backlite. Tasks live in their own SQLite file so queue
// bookkeeping never contends with catalog writes.
type Client struct {
	client *backlite.Client
	db     *sql.DB
	config Config

	mu      sync.RWMutex
	started bool
}

// TasksDBPath derives the queue database path from the catalog path:
// ./library.db becomes ./library-tasks.db.
func TasksDBPath(mainDBPath string) string {
	dir := filepath.Dir(mainDBPath)
	base := filepath.Base(mainDBPath)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+"-tasks"+ext)
}

func NewClient(mainDBPath string, cfg Config) (*Client, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	db, err := sql.Open("sqlite3", TasksDBPath(mainDBPath)+"?_journal=WAL&_timeout=5000&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open tasks database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Workers + 2)
	db.SetMaxIdleConns(cfg.Workers + 1)
	db.SetConnMaxLifetime(time.Hour)

	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              db,
		NumWorkers:      cfg.Workers,
		ReleaseAfter:    cfg.ReleaseAfter,
		CleanupInterval: cfg.CleanupInterval,
		Logger:          &stdLogger{},
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create backlite client: %w", err)
	}

	if err := client.Install(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to install backlite schema: %w", err)
	}

	return &Client{
		client: client,
		db:     db,
		config: cfg,
	}, nil
}

// Register must be called before Start.
func (c *Client) Register(queues ...backlite.Queue) {
	for _, q := range queues {
		c.client.Register(q)
	}
}

// Start begins processing tasks. Non-blocking; run it in a goroutine and
// pair it with Stop.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	log.Printf("Task queue started with %d workers", c.config.Workers)
	c.client.Start(ctx)
}

// Stop waits for running tasks. Returns false when ctx expired first.
func (c *Client) Stop(ctx context.Context) bool {
	c.mu.RLock()
	started := c.started
	c.mu.RUnlock()
	if !started {
		return true
	}

	log.Println("Stopping task queue...")
	success := c.client.Stop(ctx)
	if success {
		log.Println("Task queue stopped gracefully")
	} else {
		log.Println("Task queue stopped with timeout (some tasks may not have completed)")
	}
	return success
}

func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Add starts an operation to enqueue one or more tasks.
func (c *Client) Add(tasks ...backlite.Task) *backlite.TaskAddOp {
	return c.client.Add(tasks...)
}

// Enqueue saves tasks immediately and returns their IDs.
func (c *Client) Enqueue(tasks ...backlite.Task) ([]string, error) {
	return c.client.Add(tasks...).Save()
}

func (c *Client) Status(ctx context.Context, taskID string) (backlite.TaskStatus, error) {
	return c.client.Status(ctx, taskID)
}

// stdLogger implements backlite.Logger on top of the standard logger.
// backlite passes params as key/value pairs, not format arguments.
type stdLogger struct{}

func (l *stdLogger) Info(message string, params ...any) {
	log.Println(append([]any{"[TASK]", message}, params...)...)
}

func (l *stdLogger) Error(message string, params ...any) {
	log.Println(append([]any{"[TASK ERROR]", message}, params...)...)
}
