// Package public embeds the static files served under /assets/.
package public

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Assets returns the asset tree rooted at static/assets.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static/assets")
	if err != nil {
		panic(err)
	}
	return sub
}
