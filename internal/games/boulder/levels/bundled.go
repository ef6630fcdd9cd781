package levels

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed bundled/*.yaml
var bundledFS embed.FS

// BundledPrefix marks FilePath values of levels compiled into the binary.
const BundledPrefix = "bundled:"

// Bundled returns the levels shipped with the binary, sorted by ID.
func Bundled(logger *log.Logger) ([]Level, error) {
	sub, err := fs.Sub(bundledFS, "bundled")
	if err != nil {
		return nil, err
	}
	levels, err := loadFS(sub, ".", logger)
	if err != nil {
		return nil, err
	}
	for i := range levels {
		levels[i].FilePath = BundledPrefix + levels[i].FilePath
	}
	return levels, nil
}

// IsBundled reports whether the level was loaded from the binary.
func (l Level) IsBundled() bool {
	return strings.HasPrefix(l.FilePath, BundledPrefix)
}
