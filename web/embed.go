package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Assets returns the frontend rooted at the static directory
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
