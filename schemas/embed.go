// Package schemas holds the JSON Schemas for the matcher's input and output documents.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
