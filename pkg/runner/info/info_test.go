package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/dday/pkg/exam"
	"tableflip.dev/dday/pkg/schedule"
	"tableflip.dev/dday/pkg/store"
)

func TestInfo(t *testing.T) {
	t.Setenv("DDAY_CONFIG_PATH", "")
	s := schedule.New(store.NewMemory(exam.New("Math", "2025-03-15", "", "")))
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	i := Info{Config: store.NewConfig(store.BackendSQLite, "/tmp/exams.db", ""), Store: s, Out: &out}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}

	for _, want := range []string{
		"DDAY_CONFIG_PATH env var not set",
		"Config file: none",
		"sqlite",
		"/tmp/exams.db",
		"(everyone)",
		"Exams:       1",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestInfoNoStore(t *testing.T) {
	i := Info{Config: store.NewConfig(store.BackendJSON, "", "kim"), Out: &bytes.Buffer{}}
	if err := i.Do(context.Background()); err == nil {
		t.Fatalf("expected error without a schedule")
	}
}
