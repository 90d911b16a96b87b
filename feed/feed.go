// Package feed fetches the published weekly menu from the canteen's realtime
// database.
//
// The database pushes updates over a server-sent-events stream; this client
// treats the subscription as a one-shot fetch: subscribe, take the first
// snapshot event, unsubscribe. Every request gets a fresh snapshot and a
// bounded wait — there is no long-lived listener and no retry.
package feed

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMissingWeeklyMenu is returned when the snapshot has no weeklyMenu field
// or no entry matches the requested week.
var ErrMissingWeeklyMenu = errors.New("missing weekly menu")

// Config configures the feed client.
type Config struct {
	// URL of the admin record endpoint.
	URL string
	// Timeout bounds the whole subscribe-and-wait sequence. Default: 8s.
	Timeout time.Duration
	// MaxBytes caps the snapshot payload size. Default: 1 MiB.
	MaxBytes int64
	// UserAgent sent with requests.
	UserAgent string
}

func (c *Config) defaults() {
	if c.Timeout <= 0 {
		c.Timeout = 8 * time.Second
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 1 << 20
	}
	if c.UserAgent == "" {
		c.UserAgent = "kantina-feed/1.0"
	}
}

// Client fetches one-shot snapshots of the admin record.
type Client struct {
	cfg    Config
	client *http.Client
}

// New creates a Client. The HTTP client carries no timeout of its own; each
// Snapshot call derives a deadline from Config.Timeout.
func New(cfg Config) *Client {
	cfg.defaults()
	return &Client{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// Snapshot subscribes to the record stream, waits for the first snapshot
// event, and closes the subscription. Plain JSON responses (non-streaming
// endpoints) are accepted too.
func (c *Client) Snapshot(ctx context.Context) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: new request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: status %d from %s", resp.StatusCode, c.cfg.URL)
	}

	body := io.LimitReader(resp.Body, c.cfg.MaxBytes)

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		return firstSnapshot(body)
	}

	// Non-streaming endpoint: the body is the record itself.
	var rec Record
	if err := json.NewDecoder(body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("feed: decode record: %w", err)
	}
	return &rec, nil
}

// sseEnvelope is the event payload shape of the realtime database:
// {"path": "/", "data": {...record...}}.
type sseEnvelope struct {
	Path string          `json:"path"`
	Data json.RawMessage `json:"data"`
}

// firstSnapshot scans the event stream for the first snapshot ("put") event
// and decodes its payload. Keep-alive events and null payloads are skipped.
func firstSnapshot(r io.Reader) (*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	var event string
	var data strings.Builder

	flush := func() (*Record, bool, error) {
		defer func() { event = ""; data.Reset() }()
		if event != "" && event != "put" {
			return nil, false, nil
		}
		payload := strings.TrimSpace(data.String())
		if payload == "" || payload == "null" {
			return nil, false, nil
		}
		var env sseEnvelope
		if err := json.Unmarshal([]byte(payload), &env); err != nil {
			return nil, false, fmt.Errorf("feed: decode event: %w", err)
		}
		raw := env.Data
		if len(raw) == 0 {
			// Payload without an envelope: treat it as the record.
			raw = json.RawMessage(payload)
		}
		if string(raw) == "null" {
			return nil, false, nil
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, false, fmt.Errorf("feed: decode snapshot: %w", err)
		}
		return &rec, true, nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			rec, ok, err := flush()
			if err != nil {
				return nil, err
			}
			if ok {
				return rec, nil
			}
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("feed: read stream: %w", err)
	}

	// Stream ended mid-event; a final unterminated block still counts.
	rec, ok, err := flush()
	if err != nil {
		return nil, err
	}
	if ok {
		return rec, nil
	}
	return nil, fmt.Errorf("feed: stream closed before first snapshot")
}
