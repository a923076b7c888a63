// Package web holds the HTML templates and the typed view models rendered
// into them.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewFiles embed.FS

// Template names, relative to views/ without extension.
const (
	LayoutMain       = "layouts/main"
	PageLanding      = "index"
	PageLogin        = "auth/login"
	PageSignup       = "auth/signup"
	PageDashboard    = "dashboard"
	PageTicketList   = "tickets/list"
	PageTicketCreate = "tickets/create"
	PageTicketEdit   = "tickets/edit"
	PageNotFound     = "404"
	PageError        = "error"
)

// NewEngine returns a Fiber view engine over the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(viewFiles, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("label", Label)
	return engine
}

// Label turns an enum value such as "in_progress" into "In Progress".
func Label(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return ""
	}
	words := strings.Fields(strings.ReplaceAll(rv.String(), "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
