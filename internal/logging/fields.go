// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package logging

// Field names for structured log entries.
const (
	FieldError    = "error"
	FieldPath     = "path"
	FieldConfig   = "config"
	FieldLine     = "line"
	FieldText     = "text"
	FieldSpans    = "spans"
	FieldProvider = "provider"
	FieldJobs     = "jobs"
	FieldErrors   = "errors"
	FieldVersion  = "version"
	FieldCommit   = "commit"
	FieldBuilt    = "built"
	FieldChanged  = "changed"
)
