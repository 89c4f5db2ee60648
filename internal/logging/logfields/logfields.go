// Package logfields defines the field names used in log messages.
package logfields

const (
	// LogSubsys is the field naming the subsystem that logs.
	LogSubsys = "subsys"

	// File is an input, output or rule file name.
	File = "file"

	// Line is a 1-based line number of the input.
	Line = "line"

	// Rule is the index of a rule within its table.
	Rule = "rule"

	// Pattern is the regular expression of a rule.
	Pattern = "pattern"

	// Token is a camel-case identifier.
	Token = "token"

	// Table names a rule table.
	Table = "table"
)
