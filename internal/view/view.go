package view

import (
	"bytes"
	"html/template"
)

// Deliberately plain markup: the client's value is in its controllers, not
// its styling.
const layout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Lum&eacute;ra</title>
{{if .Refresh}}<meta http-equiv="refresh" content="{{.Refresh}}">{{end}}
</head>
<body>
<nav>
  <a href="/">Lum&eacute;ra</a>
  {{if .LoggedIn}}
  <a href="/dashboard">Dashboard</a>
  <a href="/upload">Upload</a>
  <a href="/progress">Progress</a>
  <a href="/chatbot">Consultant</a>
  <form method="post" action="/logout"><button type="submit">Logout</button></form>
  {{else}}
  <a href="/login">Login</a>
  <a href="/signup">Sign Up</a>
  {{end}}
</nav>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{template "content" .}}
</body>
</html>`

// Page is the data every template receives.
type Page struct {
	LoggedIn bool
	Error    string
	Refresh  string // meta-refresh directive, e.g. "2;url=/login"
	Data     interface{}
}

var templates = map[string]*template.Template{}

func register(name, content string) {
	t := template.Must(template.New("layout").Parse(layout))
	template.Must(t.New("content").Parse(content))
	templates[name] = t
}

func init() {
	register("home", homeContent)
	register("login", loginContent)
	register("signup", signupContent)
	register("dashboard", dashboardContent)
	register("upload", uploadContent)
	register("results", resultsContent)
	register("progress", progressContent)
	register("chatbot", chatbotContent)
	register("message", messageContent)
}

// Render produces the full page for a named view.
func Render(name string, page Page) (string, error) {
	t, ok := templates[name]
	if !ok {
		t = templates["message"]
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
