package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/dday/pkg/exam"
)

// JSONFile keeps the whole schedule as one indented JSON array of field
// maps. A missing or empty file is an empty schedule.
type JSONFile struct {
	path string
}

var _ Persistence = (*JSONFile)(nil)

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (f *JSONFile) Path() string { return f.path }

func (f *JSONFile) Close() error { return nil }

func (f *JSONFile) ReadAll(_ context.Context) ([]exam.Exam, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", f.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", f.path, err)
	}
	exams := make([]exam.Exam, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		exams = append(exams, exam.FromRow(row))
	}
	return exams, nil
}

// WriteAll replaces the file atomically.
func (f *JSONFile) WriteAll(_ context.Context, exams []exam.Exam) error {
	if exams == nil {
		exams = []exam.Exam{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exams); err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("store: ensure directory: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("store: replace %s: %w", f.path, err)
	}
	return nil
}
