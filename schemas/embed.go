// Package schemas embeds the JSON Schema documents for catalog files and command output.
package schemas

import _ "embed"

// Catalog describes a unit catalog file (JSON, or YAML converted to JSON).
//
//go:embed catalog.schema.json
var Catalog string

// OptimizeReport describes the JSON written by the optimize command.
//
//go:embed optimize_report.schema.json
var OptimizeReport string

// CompareReport describes the JSON written by the compare command.
//
//go:embed compare_report.schema.json
var CompareReport string
