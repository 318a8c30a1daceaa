// Package runner expands batches of range descriptors concurrently.
package runner

import (
	"io"

	"github.com/yaklabco/gofill/pkg/fillrange"
)

// StdinPath is the path that selects Options.Stdin as a descriptor source.
const StdinPath = "-"

// Options controls a batch run.
type Options struct {
	// Paths are files or directories holding descriptors, one per line.
	// StdinPath reads from Stdin. Empty means stdin.
	Paths []string

	// Descriptors are expanded in addition to those read from Paths.
	Descriptors []Descriptor

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions selects files when a path is a directory.
	// Defaults to DefaultExtensions().
	Extensions []string

	// Stdin is read when Paths contains StdinPath.
	Stdin io.Reader

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// FailFast stops scheduling new descriptors after the first failure.
	FailFast bool

	// MaxLength rejects ranges with more members than this. 0 disables the check.
	MaxLength uint64

	// Fill holds the expansion options shared by every descriptor.
	Fill fillrange.Options
}

// DefaultExtensions returns the file extensions read from directories.
func DefaultExtensions() []string {
	return []string{".ranges", ".txt"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 && len(o.Descriptors) == 0 {
		return []string{StdinPath}
	}
	return o.Paths
}
