package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed web
var webAssets embed.FS

// staticHandler serves dir when set, otherwise the embedded upload page.
func staticHandler(dir string) (http.Handler, error) {
	if dir != "" {
		return http.FileServer(http.Dir(dir)), nil
	}
	sub, err := fs.Sub(webAssets, "web")
	if err != nil {
		return nil, fmt.Errorf("load embedded assets: %w", err)
	}
	return http.FileServer(http.FS(sub)), nil
}
