package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gofill/pkg/runner"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup write: %v", err)
	}
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "ranges.ranges")
	writeFile(t, file, "1..3\n")

	sources, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"ranges.ranges"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(sources) != 1 || sources[0] != file {
		t.Errorf("expected [%s], got %v", file, sources)
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, f := range []string{"b.ranges", "a/one.txt", "a/skip.md", ".hidden/x.ranges", "a/.dot.ranges"} {
		writeFile(t, filepath.Join(dir, f), "1..2\n")
	}

	sources, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{filepath.Join(dir, "a/one.txt"), filepath.Join(dir, "b.ranges")}
	if strings.Join(sources, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, sources)
	}
}

func TestDiscover_StdinAndDedup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "r.txt"), "a..c\n")

	sources, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"r.txt", runner.StdinPath, "r.txt"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(sources) != 2 || sources[1] != runner.StdinPath {
		t.Errorf("unexpected sources %v", sources)
	}
}

func TestDiscover_Missing(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"nope.ranges"},
		WorkingDir: t.TempDir(),
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestReadDescriptors(t *testing.T) {
	t.Parallel()

	input := "# comment\n\n{1..10..2}\n  a..e  \n-5..5\n"
	descriptors, err := runner.ReadDescriptors(strings.NewReader(input), "input")
	if err != nil {
		t.Fatalf("ReadDescriptors() error = %v", err)
	}

	if len(descriptors) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(descriptors))
	}
	if got := descriptors[0]; got.Start != "1" || got.End != "10" || got.Step != "2" || got.Line != 3 {
		t.Errorf("unexpected first descriptor %+v", got)
	}
	if got := descriptors[2].Location(); got != "input:5" {
		t.Errorf("expected location input:5, got %s", got)
	}
}

func TestReadDescriptors_Invalid(t *testing.T) {
	t.Parallel()

	_, err := runner.ReadDescriptors(strings.NewReader("1..2\n{1..2\n"), "bad")
	if !errors.Is(err, runner.ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
	if !strings.Contains(err.Error(), "bad:2") {
		t.Errorf("expected location in error, got %v", err)
	}
}
