// Package assets bundles the seed fixtures shipped with the binary.
package assets

import "embed"

//go:embed data/*.json
var Fixtures embed.FS
