// Package broker ties the menu engine to its sources and transport: deck
// uploads, the on-disk store, the realtime-database feed, the HTTP surface,
// and the MCP tools.
package broker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/hazyhaar/kantina/audit"
	"github.com/hazyhaar/kantina/deckpipe"
	"github.com/hazyhaar/kantina/feed"
	"github.com/hazyhaar/kantina/menu"
	"github.com/hazyhaar/kantina/menustore"
	"github.com/hazyhaar/kantina/weeknum"
)

// Service is the lunch-menu broker.
type Service struct {
	cfg    *Config
	rules  menu.Rules
	pipe   *deckpipe.Pipeline
	store  *menustore.Store
	feed   *feed.Client
	audit  *audit.Logger
	logger *slog.Logger
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithAudit attaches an audit logger.
func WithAudit(l *audit.Logger) Option {
	return func(s *Service) { s.audit = l }
}

// WithFeedClient overrides the feed client (used in tests).
func WithFeedClient(c *feed.Client) Option {
	return func(s *Service) { s.feed = c }
}

// New creates the broker service from a validated config.
func New(cfg *Config, logger *slog.Logger, opts ...Option) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rules := menu.DefaultRules()
	if cfg.RulesPath != "" {
		loaded, err := menu.LoadRules(cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("broker: %w", err)
		}
		rules = loaded
	}

	s := &Service{
		cfg:   cfg,
		rules: rules,
		pipe: deckpipe.New(deckpipe.Config{
			MaxFileSize: int64(cfg.MaxUploadMB) * 1024 * 1024,
			Logger:      logger,
		}),
		store:  menustore.New(cfg.MenusDir),
		logger: logger,
	}
	if cfg.Source == SourceFeed {
		s.feed = feed.New(feed.Config{
			URL:     cfg.Feed.URL,
			Timeout: cfg.Feed.Timeout(),
		})
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CurrentWeek returns the week number the canteen publishes under today.
func (s *Service) CurrentWeek() string {
	return strconv.Itoa(weeknum.Current())
}

// Menu resolves the menu for a week from the configured source.
func (s *Service) Menu(ctx context.Context, week string) (*menu.Menu, error) {
	if s.cfg.Source == SourceFeed {
		return s.feedMenu(ctx, week)
	}
	return s.store.Load(week)
}

// feedMenu fetches one snapshot and maps the requested week out of it.
func (s *Service) feedMenu(ctx context.Context, week string) (*menu.Menu, error) {
	rec, err := s.feed.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return rec.Menu(s.rules, week)
}

var digitsRe = regexp.MustCompile(`[0-9]+`)

// weekFromFilename extracts the first digit run from an uploaded filename,
// the convention the canteen names its decks by ("meny-uke-12.pptx").
func weekFromFilename(name string) string {
	return digitsRe.FindString(name)
}

// Ingest stores one uploaded deck, extracts its text, parses the menu, and
// persists it under the deck's week number. An empty filename yields a nil
// menu and no error; callers filter nils out of batch responses.
func (s *Service) Ingest(ctx context.Context, filename string, deck io.Reader) (*menu.Menu, error) {
	if filename == "" {
		return nil, nil
	}
	filename = filepath.Base(filename)

	path, err := s.saveUpload(filename, deck)
	if err != nil {
		return nil, err
	}

	extracted, err := s.pipe.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}

	m := s.rules.FromText(extracted.RawText)

	week := weekFromFilename(filename)
	if m.WeekNumber == "" {
		// Deck text carried no UKE line; fall back to the filename week.
		m.WeekNumber = week
	}
	if week == "" {
		week = digitsRe.FindString(m.WeekNumber)
	}
	if week == "" {
		return nil, fmt.Errorf("ingest %s: no week number in filename or deck text", filename)
	}

	if _, err := s.store.Save(week, m); err != nil {
		return nil, err
	}
	s.logger.Info("menu ingested", "week", week, "file", filename, "days", len(m.Days))
	return m, nil
}

// saveUpload keeps the raw deck on disk alongside the parsed menus.
func (s *Service) saveUpload(filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", s.cfg.UploadsDir, err)
	}
	path := filepath.Join(s.cfg.UploadsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// logEvent records an audit entry when a logger is attached.
func (s *Service) logEvent(action, week, errMsg string) {
	if s.audit == nil {
		return
	}
	s.audit.LogAsync(audit.Entry{
		Action: action,
		Week:   week,
		Source: s.cfg.Source,
		Error:  errMsg,
	})
}
