package server

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"

	"github.com/openfed/login-manager/internal/serviceerr"
)

// respond writes the minimal HTML error page and terminates the request. No
// provider internals ever reach the browser; the message is one of the
// fixed user-visible strings.
func respond(w http.ResponseWriter, message string, status int) {
	body := fmt.Sprintf("<html><head></head><body>%s</body></html>", html.EscapeString(message))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func respondError(w http.ResponseWriter, err *serviceerr.Error) {
	respond(w, err.Message, err.Status)
}
