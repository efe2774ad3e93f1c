package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/dday/pkg/exam"
)

// Diskv keeps one JSON row per file in a directory. Keys are the zero-padded
// position of the row so that reading back preserves collection order.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

var _ Persistence = (*Diskv)(nil)

func NewDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No cache: rows may be rewritten by another process between reads.
		CacheSizeMax:      0,
	}), basePath: basePath}, nil
}

func (p *Diskv) Path() string { return p.basePath }

func (p *Diskv) Close() error { return nil }

func (p *Diskv) keys(ctx context.Context) []string {
	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ReadAll skips rows that cannot be decoded, logging each one.
func (p *Diskv) ReadAll(ctx context.Context) ([]exam.Exam, error) {
	if _, err := os.Stat(p.basePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: stat %s: %w", p.basePath, err)
	}
	var exams []exam.Exam
	for _, key := range p.keys(ctx) {
		val, err := p.d.Read(key)
		if err != nil {
			slog.Warn("store: skipping unreadable row", "key", key, "error", err)
			continue
		}
		var row map[string]any
		if err := json.Unmarshal(val, &row); err != nil || row == nil {
			slog.Warn("store: skipping undecodable row", "key", key, "error", err)
			continue
		}
		exams = append(exams, exam.FromRow(row))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return exams, nil
}

// WriteAll erases every existing row before writing the new ones.
func (p *Diskv) WriteAll(ctx context.Context, exams []exam.Exam) error {
	for _, key := range p.keys(ctx) {
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	for i, e := range exams {
		data, err := json.Marshal(e.Row())
		if err != nil {
			return fmt.Errorf("store: encode row %d: %w", i, err)
		}
		if err := p.d.Write(rowKey(i), data); err != nil {
			return fmt.Errorf("store: write row %d: %w", i, err)
		}
	}
	return nil
}

func rowKey(i int) string {
	return fmt.Sprintf("%06d", i)
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
