package web

import (
	"bytes"
	"html/template"
	"strings"
)

// InputField describes a labeled <input>. ID defaults to Name and is the
// handle forms use to focus or read the control.
type InputField struct {
	ID           string
	Name         string
	Label        string
	Type         string
	Value        string
	Placeholder  string
	Autocomplete string
	Required     bool
	Error        string
}

// Option is one <option> of a SelectField.
type Option struct {
	Value string
	Label string
}

// SelectField describes a labeled <select>.
type SelectField struct {
	ID          string
	Name        string
	Label       string
	Value       string
	Placeholder string
	Options     []Option
	Required    bool
	Error       string
}

// TextareaField describes a labeled <textarea>.
type TextareaField struct {
	ID          string
	Name        string
	Label       string
	Value       string
	Placeholder string
	Rows        int
	Required    bool
	Error       string
}

const controlsSource = `
{{define "label"}}{{if .Label}}<label for="{{.ID}}">{{.Label}}{{if .Required}}<span class="required-marker" aria-hidden="true">*</span>{{end}}</label>{{end}}{{end}}
{{define "error"}}{{if .Error}}<p class="field-error" id="{{.ID}}-error" role="alert">{{.Error}}</p>{{end}}{{end}}

{{define "input"}}<div class="form-field">{{template "label" .}}<input id="{{.ID}}" name="{{.Name}}" type="{{.Type}}"{{if .Value}} value="{{.Value}}"{{end}}{{if .Placeholder}} placeholder="{{.Placeholder}}"{{end}}{{if .Autocomplete}} autocomplete="{{.Autocomplete}}"{{end}}{{if .Required}} required aria-required="true"{{end}}{{if .Error}} aria-invalid="true" aria-describedby="{{.ID}}-error"{{end}}>{{template "error" .}}</div>{{end}}

{{define "select"}}<div class="form-field">{{template "label" .}}<select id="{{.ID}}" name="{{.Name}}"{{if .Required}} required aria-required="true"{{end}}{{if .Error}} aria-invalid="true" aria-describedby="{{.ID}}-error"{{end}}>{{if .Placeholder}}<option value="">{{.Placeholder}}</option>{{end}}{{range .Options}}<option value="{{.Value}}"{{if eq .Value $.Value}} selected{{end}}>{{.Label}}</option>{{end}}</select>{{template "error" .}}</div>{{end}}

{{define "textarea"}}<div class="form-field">{{template "label" .}}<textarea id="{{.ID}}" name="{{.Name}}" rows="{{.Rows}}"{{if .Placeholder}} placeholder="{{.Placeholder}}"{{end}}{{if .Required}} required aria-required="true"{{end}}{{if .Error}} aria-invalid="true" aria-describedby="{{.ID}}-error"{{end}}>{{.Value}}</textarea>{{template "error" .}}</div>{{end}}
`

var controls = template.Must(template.New("controls").Parse(controlsSource))

func render(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := controls.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func fieldID(id, name string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return name
}

// Input renders a labeled input element.
func Input(f InputField) (template.HTML, error) {
	f.ID = fieldID(f.ID, f.Name)
	if f.Type == "" {
		f.Type = "text"
	}
	return render("input", f)
}

// Select renders a labeled select element with Value preselected.
func Select(f SelectField) (template.HTML, error) {
	f.ID = fieldID(f.ID, f.Name)
	return render("select", f)
}

// Textarea renders a labeled textarea element.
func Textarea(f TextareaField) (template.HTML, error) {
	f.ID = fieldID(f.ID, f.Name)
	if f.Rows <= 0 {
		f.Rows = 4
	}
	return render("textarea", f)
}
