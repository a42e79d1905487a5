// Package web renders the server-side pages: the login form, the protected
// dashboard shell and the form controls both are built from.
package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap exposes the form controls and theme helpers to page templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"input":    Input,
		"select":   Select,
		"textarea": Textarea,
	}
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Install sets the page templates on a gin engine.
func Install(r *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	return nil
}

// LoginPage is the data of login.html.
type LoginPage struct {
	Email    InputField
	Password InputField
	Error    string
}

// NewLoginPage builds the login form, echoing the email back after a failed attempt.
func NewLoginPage(email, formError string) LoginPage {
	return LoginPage{
		Email: InputField{
			Name:         "email",
			Label:        "Email",
			Type:         "email",
			Value:        email,
			Autocomplete: "username",
			Required:     true,
		},
		Password: InputField{
			Name:         "password",
			Label:        "Password",
			Type:         "password",
			Autocomplete: "current-password",
			Required:     true,
			Error:        formError,
		},
		Error: formError,
	}
}

// DashboardPage is the data of dashboard.html.
type DashboardPage struct {
	Session    DashboardUser
	Hospital   string
	LogoURL    string
	Tagline    string
	Navigation []NavItem
	Palette    Palette
}

// DashboardUser is the header's view of the signed-in user.
type DashboardUser struct {
	Name string
	Role string
}
