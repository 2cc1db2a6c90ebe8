// Package web provides the embedded assets used when generating sites: the
// base stylesheet under theme/ and the fallback images under placeholders/.
// Both can be overridden from disk through configuration.
package web

import "embed"

// Assets embeds web/theme/ and web/placeholders/.
//
//go:embed theme placeholders
var Assets embed.FS

// StylesheetPath is the location of the base stylesheet inside Assets.
const StylesheetPath = "theme/site.css"

// PlaceholderDir is the directory of placeholder images inside Assets.
const PlaceholderDir = "placeholders"
