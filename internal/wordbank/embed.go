// Package wordbank provides the embedded word and phrase lists and random
// selection over them.
package wordbank

import "embed"

// dataFS embeds the word list JSON from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
