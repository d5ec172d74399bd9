// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldBytes      = "bytes"

	// Configuration fields.
	FieldConfig = "config"
	FieldLevel  = "level"
	FieldTitles = "titles"

	// Editor fields.
	FieldSession      = "session"
	FieldKey          = "key"
	FieldKeys         = "keys"
	FieldCursor       = "cursor"
	FieldCursorBefore = "cursor_before"
	FieldQuery        = "query"
	FieldEntry        = "entry"

	// Tree fields.
	FieldNodeKind = "node_kind"
	FieldDepth    = "depth"

	// Statistics fields.
	FieldFilesProcessed = "files_processed"
	FieldFilesChanged   = "files_changed"
	FieldTokens         = "tokens"
	FieldChanged        = "changed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
