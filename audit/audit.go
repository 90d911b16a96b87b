// Package audit records menu lookups and uploads in a SQLite log.
//
// The log is operational history, not authorization: who asked for which
// week, which decks were ingested, and what failed. Writes from request
// handlers go through LogAsync so a slow disk never delays a response.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// Schema contains the DDL for the audit table.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_log (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    ts       INTEGER NOT NULL,
    action   TEXT NOT NULL,
    week     TEXT NOT NULL DEFAULT '',
    source   TEXT NOT NULL DEFAULT '',
    status   TEXT NOT NULL DEFAULT 'success',
    error    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_audit_ts ON audit_log(ts);
CREATE INDEX IF NOT EXISTS idx_audit_week ON audit_log(week);
`

// Entry is one audit record. Zero-value Timestamp and Status are filled on
// write: now, and "success" or "error" depending on Error.
type Entry struct {
	Timestamp int64
	Action    string // menu_get, menu_upload, feed_fetch
	Week      string
	Source    string // document | feed
	Status    string
	Error     string
}

// Logger writes audit entries to SQLite.
type Logger struct {
	db *sql.DB

	mu     sync.Mutex
	queue  chan Entry
	done   chan struct{}
	closed bool
}

// NewLogger creates a Logger on an open database handle. Call Init before
// logging.
func NewLogger(db *sql.DB) *Logger {
	l := &Logger{
		db:    db,
		queue: make(chan Entry, 64),
		done:  make(chan struct{}),
	}
	go l.drain()
	return l
}

// Init creates the audit table if needed.
func (l *Logger) Init() error {
	if _, err := l.db.Exec(Schema); err != nil {
		return fmt.Errorf("audit: init schema: %w", err)
	}
	return nil
}

// Log writes one entry synchronously.
func (l *Logger) Log(ctx context.Context, e Entry) error {
	fillDefaults(&e)
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO audit_log (ts, action, week, source, status, error) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Timestamp, e.Action, e.Week, e.Source, e.Status, e.Error)
	if err != nil {
		return fmt.Errorf("audit: insert: %w", err)
	}
	return nil
}

// LogAsync queues an entry for background writing. Entries are dropped when
// the queue is full or the logger is closed; audit lag must never block a
// request.
func (l *Logger) LogAsync(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	select {
	case l.queue <- e:
	default:
	}
}

// Close flushes queued entries and stops the background writer.
func (l *Logger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()

	<-l.done
	return nil
}

func (l *Logger) drain() {
	defer close(l.done)
	for e := range l.queue {
		// Background writes log nowhere on failure; there is no one to tell.
		_ = l.Log(context.Background(), e)
	}
}

func fillDefaults(e *Entry) {
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}
	if e.Status == "" {
		if e.Error != "" {
			e.Status = "error"
		} else {
			e.Status = "success"
		}
	}
}
