// Package jsonfile is the file-backed Repository used by the local dev
// backend. Reports and lookup history live in two JSON files under the
// data directory; missing or corrupt files read as empty lists.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rgdevment/phone-tracer/internal/domain"
	"github.com/rgdevment/phone-tracer/internal/service"
)

const historyCap = 50

type store struct {
	mu          sync.Mutex
	reportsPath string
	historyPath string
}

func NewStore(dataDir string) service.Repository {
	return &store{
		reportsPath: filepath.Join(dataDir, "reports.json"),
		historyPath: filepath.Join(dataDir, "history.json"),
	}
}

func (s *store) AppendReport(ctx context.Context, r domain.SpamReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reports []domain.SpamReport
	loadJSON(s.reportsPath, &reports)
	reports = append(reports, r)

	if err := saveJSON(s.reportsPath, reports); err != nil {
		return fmt.Errorf("jsonfile: failed to save report: %w", err)
	}
	return nil
}

func (s *store) ReportsFor(ctx context.Context, e164 string) ([]domain.SpamReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reports []domain.SpamReport
	loadJSON(s.reportsPath, &reports)

	var matching []domain.SpamReport
	for _, r := range reports {
		if r.Number == e164 {
			matching = append(matching, r)
		}
	}
	return matching, nil
}

func (s *store) AddHistory(ctx context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []domain.HistoryEntry
	loadJSON(s.historyPath, &history)

	history = append([]domain.HistoryEntry{entry}, history...)
	if len(history) > historyCap {
		history = history[:historyCap]
	}

	if err := saveJSON(s.historyPath, history); err != nil {
		return fmt.Errorf("jsonfile: failed to save history: %w", err)
	}
	return nil
}

func (s *store) RecentHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []domain.HistoryEntry
	loadJSON(s.historyPath, &history)

	if len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

// loadJSON fills v from path, leaving it untouched when the file is
// absent or unreadable.
func loadJSON(path string, v any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, v)
}

func saveJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
