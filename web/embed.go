// Package web embeds the HTML templates and static assets shipped inside
// the server binary.
package web

import "embed"

//go:embed all:templates all:static
var Assets embed.FS
