// Package webui embeds the single-page frontend served at the root path.
package webui

import _ "embed"

//go:embed index.html
var Index []byte
