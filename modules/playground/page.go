package playground

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/validify/pkg/formstate"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// Page renders the full demo page for session id.
func Page(id string, fields []Field, st formstate.FormState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		initial, err := json.Marshal(map[string]any{
			"values":  st.Entity(),
			"fields":  st.Data,
			"ok":      st.OK,
			"option":  "",
			"checked": false,
		})
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>validify playground</title>
<script type="module" src="%s"></script>
</head>
<body>
<form id="form" data-signals="%s">
`, datastarScript, templ.EscapeString(string(initial))); err != nil {
			return err
		}

		for _, f := range fields {
			if err := FieldInput(id, f, st.Data[f.Name]).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = fmt.Fprintf(w, `<p>
<button type="button" data-on:click="@post('%s')">save</button>
<button type="button" data-on:click="@post('%s')">reset</button>
</p>
<p class="ok" data-show="$ok">all good!</p>
</form>
</body>
</html>
`, actionURL(id, "validate", ""), actionURL(id, "reset", ""))
		return err
	})
}

// FieldInput renders the input, label and error line of one field.
func FieldInput(id string, f Field, fs formstate.FieldState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := templ.EscapeString(f.Name)
		label := templ.EscapeString(f.Label)

		if _, err := fmt.Fprintf(w, `<div class="field" id="field-%s">
<label>%s</label>
`, name, label); err != nil {
			return err
		}

		var err error
		switch f.Input {
		case "select":
			err = renderSelect(w, id, f, fs)
		case "checkboxes":
			err = renderCheckboxes(w, id, f, fs)
		default:
			_, err = fmt.Fprintf(w, `<input type="%s" name="%s" value="%s" data-bind="values.%s" data-on:input="@post('%s')" data-on:blur="@post('%s')">
`,
				templ.EscapeString(f.Input), name, templ.EscapeString(display(fs.Value)), name,
				actionURL(id, "change", f.Name), actionURL(id, "blur", f.Name))
		}
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, `<small class="error" data-text="$fields.%s.error">%s</small>
</div>
`, name, templ.EscapeString(fs.Error))
		return err
	})
}

func renderSelect(w io.Writer, id string, f Field, fs formstate.FieldState) error {
	name := templ.EscapeString(f.Name)
	if _, err := fmt.Fprintf(w, `<select name="%s" data-bind="values.%s" data-on:change="@post('%s')">
<option value="">-</option>
`, name, name, actionURL(id, "blur", f.Name)); err != nil {
		return err
	}

	current := display(fs.Value)
	for _, opt := range f.Options {
		selected := ""
		if opt == current {
			selected = " selected"
		}
		o := templ.EscapeString(opt)
		if _, err := fmt.Fprintf(w, "<option value=\"%s\"%s>%s</option>\n", o, selected, o); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</select>\n")
	return err
}

func renderCheckboxes(w io.Writer, id string, f Field, fs formstate.FieldState) error {
	checked := toStrings(fs.Value)
	for _, opt := range f.Options {
		attr := ""
		if slices.Contains(checked, opt) {
			attr = " checked"
		}
		o := templ.EscapeString(opt)
		if _, err := fmt.Fprintf(w, `<label><input type="checkbox" value="%s"%s data-on:change="$option = '%s'; $checked = el.checked; @post('%s')"> %s</label>
`, o, attr, o, actionURL(id, "toggle", f.Name), o); err != nil {
			return err
		}
	}
	return nil
}

func actionURL(id, action, field string) string {
	u := "/forms/" + templ.EscapeString(id) + "/" + action
	if field != "" {
		u += "/" + templ.EscapeString(field)
	}
	return u
}

func display(v any) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok && f == 0 {
		return ""
	}
	return fmt.Sprint(v)
}

func toStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, fmt.Sprint(item))
		}
		return out
	}
	return nil
}
