package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Handler serves the embedded browser front end.
func Handler() http.Handler {
	content, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// embed guarantees the directory exists; this is unreachable.
		panic(err)
	}
	return http.FileServer(http.FS(content))
}
