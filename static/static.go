package static

import "embed"

// FS holds the favicon and other assets served under /static.
//
//go:embed files
var FS embed.FS
