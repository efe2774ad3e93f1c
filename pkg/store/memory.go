package store

import (
	"context"
	"sync"

	"tableflip.dev/dday/pkg/exam"
)

// Memory keeps the schedule in process memory only. It backs throwaway
// sessions and tests; ReadErr and WriteErr make the next calls fail.
type Memory struct {
	mu   sync.Mutex
	rows []exam.Exam

	ReadErr  error
	WriteErr error
	Writes   int
}

var _ Persistence = (*Memory)(nil)

func NewMemory(exams ...exam.Exam) *Memory {
	return &Memory{rows: append([]exam.Exam(nil), exams...)}
}

func (m *Memory) Path() string { return "" }

func (m *Memory) Close() error { return nil }

func (m *Memory) ReadAll(_ context.Context) ([]exam.Exam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return append([]exam.Exam(nil), m.rows...), nil
}

func (m *Memory) WriteAll(_ context.Context, exams []exam.Exam) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.rows = append([]exam.Exam(nil), exams...)
	return nil
}

// Rows returns what was last written.
func (m *Memory) Rows() []exam.Exam {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]exam.Exam(nil), m.rows...)
}
