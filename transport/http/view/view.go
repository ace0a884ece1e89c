package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

const (
	Home         = "home"
	Signup       = "signup"
	Login        = "login"
	Current      = "current"
	Completed    = "completed"
	Create       = "create"
	ViewTodo     = "viewtodo"
	ViewComplete = "viewcomplete"
)

//go:embed templates/*.html
var files embed.FS

var templates = parse(Home, Signup, Login, Current, Completed, Create, ViewTodo, ViewComplete)

// Page is the data every view receives. Username is empty for anonymous visitors.
type Page struct {
	Title    string
	Username string
	Error    string
	Detail   string
	Data     any
}

func (p Page) Authenticated() bool {
	return p.Username != ""
}

func parse(names ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(names))

	for _, name := range names {
		parsed[name] = template.Must(template.ParseFS(files, "templates/base.html", "templates/"+name+".html"))
	}

	return parsed
}

// Render writes the named view.
func Render(writer io.Writer, name string, page Page) error {
	tmpl, ok := templates[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	if err := tmpl.ExecuteTemplate(writer, "base", page); err != nil {
		return fmt.Errorf("failed to render view %s: %w", name, err)
	}

	return nil
}
