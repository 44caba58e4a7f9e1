package assets

import "embed"

var (
	//go:embed all:maps
	assetFS embed.FS
)

// ParkMap is the path of the park layout inside FS.
const ParkMap = "maps/park.tmx"

// FS returns the embedded asset tree. Callers that run headless (tests, the
// relay) pass os.DirFS instead when they need an on-disk override.
func FS() embed.FS {
	return assetFS
}
