// Package web embeds the static demo page served at the root path.
package web

import "embed"

// FS holds the embedded UI assets.
//
//go:embed index.html
var FS embed.FS
