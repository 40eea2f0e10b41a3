package handler

import "net/http"

// StaticHandler serves the frontend bundle from the public directory.
// index.html answers the root path and a missing file gets the file
// server's plain 404. API paths never reach this handler; the router
// matches them first.
func StaticHandler(publicDir string) http.Handler {
	return http.FileServer(http.Dir(publicDir))
}
