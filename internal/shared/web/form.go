package web

import "github.com/saransh1220/artist-console/internal/shared/validation"

// Option is a select choice
type Option struct {
	Value string
	Label string
}

// Field is one rendered form input
type Field struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Checked  bool
	Options  []Option
	Disabled bool
	Required bool
	Error    string
}

// Form is the view model of the form page
type Form struct {
	Heading      string
	Action       string
	Submit       string
	Cancel       string
	DeleteAction string
	Fields       []Field
}

// WithErrors attaches per-field messages
func (f Form) WithErrors(errs validation.FieldErrors) Form {
	fields := make([]Field, len(f.Fields))
	copy(fields, f.Fields)
	for i := range fields {
		fields[i].Error = errs[fields[i].Name]
	}
	f.Fields = fields
	return f
}

// Options builds select options whose label equals the value
func Options(values ...string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}
