package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover resolves opts.Paths into descriptor sources. Files are kept in
// the order given; directories contribute their matching files sorted by
// path. StdinPath is passed through.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	extensions := opts.effectiveExtensions()

	seen := make(map[string]struct{})
	var sources []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			sources = append(sources, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		if inputPath == StdinPath {
			add(StdinPath)
			continue
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			add(absPath)
			continue
		}

		files, err := walkDirectory(ctx, absPath, extensions)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			add(f)
		}
	}

	return sources, nil
}

// Load discovers sources and reads every descriptor from them, followed by
// opts.Descriptors.
func Load(ctx context.Context, opts Options) ([]Descriptor, error) {
	var descriptors []Descriptor

	if len(opts.Paths) > 0 || len(opts.Descriptors) == 0 {
		sources, err := Discover(ctx, opts)
		if err != nil {
			return nil, err
		}

		for _, source := range sources {
			read, err := readSource(source, opts.Stdin)
			if err != nil {
				return nil, err
			}
			descriptors = append(descriptors, read...)
		}
	}

	return append(descriptors, opts.Descriptors...), nil
}

func readSource(source string, stdin io.Reader) ([]Descriptor, error) {
	if source == StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		return ReadDescriptors(stdin, StdinPath)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	defer f.Close()

	return ReadDescriptors(f, source)
}

// ReadDescriptors parses one descriptor per line. Blank lines and lines
// starting with '#' are skipped.
func ReadDescriptors(r io.Reader, source string) ([]Descriptor, error) {
	var descriptors []Descriptor

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		d, err := ParseDescriptor(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}
		d.Source = source
		d.Line = line
		descriptors = append(descriptors, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	return descriptors, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory returns the files under root with a matching extension,
// skipping hidden entries.
func walkDirectory(ctx context.Context, root string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if path != root && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.IsDir() && slices.Contains(extensions, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	slices.Sort(files)
	return files, nil
}
