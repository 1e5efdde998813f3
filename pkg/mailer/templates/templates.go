package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
)

//go:embed *.tmpl
var FS embed.FS

// Welcome is the template sent after a successful registration.
const Welcome = "welcome"

var subjects = map[string]string{
	Welcome: "Welcome aboard",
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	switch x := value.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return fallback
		}
		return x
	case nil:
		return fallback
	}
	return value
}

var (
	htmlTpl = htmpl.Must(htmpl.New("").Funcs(htmpl.FuncMap{"default": defaultFn}).ParseFS(FS, "*.html.tmpl"))
	textTpl = texttpl.Must(texttpl.New("").Funcs(texttpl.FuncMap{"default": defaultFn}).ParseFS(FS, "*.txt.tmpl"))
)

// Render renders the subject, text and HTML bodies of the named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	subject, ok := subjects[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
	var tb, hb bytes.Buffer
	if err := textTpl.ExecuteTemplate(&tb, name+".txt.tmpl", data); err != nil {
		return "", "", "", fmt.Errorf("render text %s: %w", name, err)
	}
	if err := htmlTpl.ExecuteTemplate(&hb, name+".html.tmpl", data); err != nil {
		return "", "", "", fmt.Errorf("render html %s: %w", name, err)
	}
	return subject, strings.TrimSpace(tb.String()), hb.String(), nil
}
