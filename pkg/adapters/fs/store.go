// Package fs implements core.Store on top of a flat comma-separated
// text file: one record per line, "YYYY-MM-DD,count,diary_name".
package fs

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/inktally/inktally/pkg/core"
)

// Config holds the configuration for the flat-file store.
type Config struct {
	// Path is the location of the backing data file.
	Path string

	// AutoInit creates the data file (and its parent directories) on
	// Initialize when it does not exist yet.
	AutoInit bool

	// MustExist makes Initialize fail when the data file is missing.
	MustExist bool

	Logger *slog.Logger
}

// Store keeps article counts in memory, keyed by date then diary name,
// and loads from / flushes to a flat text file wholesale. At most one
// count exists per (date, diary) pair; inserting again overwrites.
type Store struct {
	config Config

	mu            sync.RWMutex
	records       map[core.Date]map[string]int
	watcherActive bool
}

// NewStore creates a flat-file store. Call Load to populate it.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Store{
		config:  config,
		records: make(map[core.Date]map[string]int),
	}
}

// Path returns the location of the backing data file.
func (s *Store) Path() string {
	return s.config.Path
}

// Initialize prepares the backing file according to the config.
func (s *Store) Initialize(ctx context.Context) error {
	info, err := os.Stat(s.config.Path)
	switch {
	case err == nil:
		if info.IsDir() {
			return fmt.Errorf("data path is a directory: %s", s.config.Path)
		}
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to stat data file: %w", err)
	}

	if s.config.MustExist {
		return fmt.Errorf("%w: %s", core.ErrDataFileMissing, s.config.Path)
	}
	if !s.config.AutoInit {
		return nil
	}

	if dir := filepath.Dir(s.config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	if err := writeFileAtomic(s.config.Path, nil, 0644); err != nil {
		return fmt.Errorf("failed to create data file: %w", err)
	}

	s.config.Logger.Info("data file created", "path", s.config.Path)
	return nil
}

// Load replaces the in-memory state with the file contents. Any failure
// resets the store to empty: a missing file reports ErrDataFileMissing,
// a line that does not parse into three well-typed fields reports
// *core.ParseError.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[core.Date]map[string]int)

	data, err := os.ReadFile(s.config.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", core.ErrDataFileMissing, s.config.Path)
		}
		return fmt.Errorf("failed to read data file: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// Diary names may not contain commas; there is no quoting.
		fields := strings.Split(text, ",")
		if len(fields) != 3 {
			s.records = make(map[core.Date]map[string]int)
			return &core.ParseError{
				Path:   s.config.Path,
				Line:   line,
				Reason: fmt.Sprintf("expected 3 comma-separated fields, got %d", len(fields)),
			}
		}

		date, err := core.ParseDate(fields[0])
		if err != nil {
			s.records = make(map[core.Date]map[string]int)
			return &core.ParseError{Path: s.config.Path, Line: line, Reason: err.Error()}
		}

		// Hand-edited files often pad the count with spaces.
		count, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			s.records = make(map[core.Date]map[string]int)
			return &core.ParseError{
				Path:   s.config.Path,
				Line:   line,
				Reason: fmt.Sprintf("count %q is not an integer", fields[1]),
			}
		}

		s.add(date, fields[2], count)
	}

	// A line beyond the scanner's token limit ends the loop early;
	// treat it like any other malformed record.
	if err := scanner.Err(); err != nil {
		s.records = make(map[core.Date]map[string]int)
		return &core.ParseError{Path: s.config.Path, Line: line + 1, Reason: err.Error()}
	}

	s.config.Logger.Debug("data file loaded", "path", s.config.Path, "records", s.len())
	return nil
}

// Save rewrites the full data file, replacing existing content. The
// write is atomic (temp file + rename) so a failure never truncates the
// previous file.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var buf bytes.Buffer
	for date, diaries := range s.records {
		for diary, count := range diaries {
			fmt.Fprintf(&buf, "%s,%d,%s\n", date.String(), count, diary)
		}
	}

	if err := writeFileAtomic(s.config.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}

	s.config.Logger.Debug("data file saved", "path", s.config.Path, "records", s.len())
	return nil
}

// Add upserts the count at (date, diary). Last write wins.
func (s *Store) Add(date core.Date, diary string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(date, diary, count)
}

func (s *Store) add(date core.Date, diary string, count int) {
	diaries, ok := s.records[date]
	if !ok {
		diaries = make(map[string]int)
		s.records[date] = diaries
	}
	diaries[diary] = count
}

// Count returns the count recorded at (date, diary), if any.
func (s *Store) Count(date core.Date, diary string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, ok := s.records[date][diary]
	return count, ok
}

// CountsSince returns the diary's records dated cutoff or later, ordered
// by date ascending. Future dates are not excluded.
func (s *Store) CountsSince(diary string, cutoff core.Date) []core.DatedCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.DatedCount
	for date, diaries := range s.records {
		if date.Before(cutoff) {
			continue
		}
		if count, ok := diaries[diary]; ok {
			out = append(out, core.DatedCount{Date: date, Count: count})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Diaries lists the distinct diary names present, sorted.
func (s *Store) Diaries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for _, diaries := range s.records {
		for diary := range diaries {
			seen[diary] = true
		}
	}

	names := make([]string, 0, len(seen))
	for diary := range seen {
		names = append(names, diary)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of (date, diary) records held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.len()
}

func (s *Store) len() int {
	n := 0
	for _, diaries := range s.records {
		n += len(diaries)
	}
	return n
}

var _ core.Store = (*Store)(nil)
