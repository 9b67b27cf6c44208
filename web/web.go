// Package web embeds the chat page templates and static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed views static
var files embed.FS

// Views returns the template file system rooted at views/.
func Views() http.FileSystem {
	return http.FS(mustSub("views"))
}

// Static returns the static asset file system rooted at static/.
func Static() fs.FS {
	return mustSub("static")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
