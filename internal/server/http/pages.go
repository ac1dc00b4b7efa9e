package internalhttp

import (
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var loginTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<head><title>Family Calendar — Login</title></head>
<body>
<h1>Family Calendar</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="POST" action="/login">
  <label>Username <input type="text" name="username" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Log in</button>
</form>
</body>
</html>
`))

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Family Calendar</title></head>
<body>
<h1>Family Calendar</h1>
{{if .Username}}<p>Logged in as {{.Username}} — <a href="/logout">log out</a></p>{{end}}
<div id="events">Loading events from /api/events…</div>
</body>
</html>
`))

func renderLogin(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginTemplate.Execute(w, struct{ Error string }{message}); err != nil {
		log.Errorf("failed to render login page: %v", err)
	}
}

func renderIndex(w http.ResponseWriter, username string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, struct{ Username string }{username}); err != nil {
		log.Errorf("failed to render index page: %v", err)
	}
}
