package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldOutput     = "output"
	FieldFormat     = "format"
	FieldWorkingDir = "working_dir"

	// Range fields.
	FieldStart   = "start"
	FieldEnd     = "end"
	FieldStep    = "step"
	FieldMode    = "mode"
	FieldCount   = "count"
	FieldPattern = "pattern"
	FieldLine    = "line"

	// Run fields.
	FieldJobs        = "jobs"
	FieldRanges      = "ranges"
	FieldExpanded    = "expanded"
	FieldFailed      = "failed"
	FieldMismatches  = "mismatches"
	FieldMaxLength   = "max_length"
	FieldConfigFiles = "config_files"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
