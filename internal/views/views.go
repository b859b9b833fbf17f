// Package views renders the registry's HTML pages.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"cadastro/internal/schemas"
	"cadastro/pkg/formrules"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var files embed.FS

// AppTitle is shown in the shared header of every page.
const AppTitle = "Master Cadastros"

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
	log  zerolog.Logger
}

// New parses the embedded templates.
func New(log zerolog.Logger) (*Renderer, error) {
	funcMap := template.FuncMap{
		"menuLabel": MenuLabel,
	}
	tmpl, err := template.New("layout").Funcs(funcMap).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, log: log}, nil
}

// Render writes the named template with the given status.
func (r *Renderer) Render(c *fiber.Ctx, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.Error().Err(err).Str("tpl", name).Msg("render")
		return fiber.NewError(fiber.StatusInternalServerError, "tpl")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// MenuLabel is the short name of a form in the navigation bar.
func MenuLabel(form *schemas.Form) string {
	return strings.TrimPrefix(form.Title(), "Cadastro de ")
}

// Page carries what the shared header needs.
type Page struct {
	AppTitle string
	Title    string
	Active   string
	Forms    []*schemas.Form
}

// FormPage is the data of a form page. Output holds the accepted record
// and is empty until a submission passes.
type FormPage struct {
	Page
	Form   FormView
	Output string
}

// FormView is a form ready to be rendered.
type FormView struct {
	Slug   string
	Title  string
	Action string
	Fields []FieldView
}

// FieldView is one input with its current value and error.
type FieldView struct {
	Name        string
	Label       string
	Kind        formrules.Kind
	InputType   string
	InputMode   string
	Value       string
	Error       string
	Hint        string
	Placeholder string
	Options     []OptionView
}

// OptionView is one choice of a select box or radio group.
type OptionView struct {
	Value   string
	Checked bool
}

// NewPage builds the header data for a page.
func NewPage(title, active string, forms []*schemas.Form) Page {
	return Page{AppTitle: AppTitle, Title: title, Active: active, Forms: forms}
}

// NewFormView fills a form with the submitted raw values and their errors.
// With nil raw values the form is empty and radio groups fall back to
// their first option.
func NewFormView(form *schemas.Form, raw map[string]string, errs formrules.FieldErrors) FormView {
	view := FormView{
		Slug:   form.Slug(),
		Title:  form.Title(),
		Action: form.Path,
		Fields: make([]FieldView, 0, len(form.Schema.Fields)),
	}
	for _, f := range form.Schema.Fields {
		view.Fields = append(view.Fields, newFieldView(f, raw[f.Name], errs[f.Name]))
	}
	return view
}

func newFieldView(f formrules.Field, value, msg string) FieldView {
	fv := FieldView{
		Name:        f.Name,
		Label:       f.Label,
		Kind:        f.Kind,
		Value:       value,
		Error:       msg,
		Hint:        f.Hint,
		Placeholder: f.Placeholder,
	}

	switch f.Kind {
	case formrules.KindEmail:
		fv.InputType = "email"
	case formrules.KindDate:
		fv.InputType = "date"
	case formrules.KindDigits:
		fv.InputType, fv.InputMode = "text", "numeric"
	case formrules.KindNumber:
		fv.InputType, fv.InputMode = "text", "decimal"
	default:
		fv.InputType = "text"
	}

	if f.Kind == formrules.KindRadio && value == "" && len(f.Options) > 0 {
		value = f.Options[0]
	}
	for _, o := range f.Options {
		fv.Options = append(fv.Options, OptionView{Value: o, Checked: o == value})
	}
	return fv
}
