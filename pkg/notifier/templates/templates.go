package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Template names understood by the notify worker.
const (
	BookingConfirmed = "booking_confirmed"
	BookingCancelled = "booking_cancelled"
)

func baseFuncs() map[string]any {
	return map[string]any{
		"now":        func() time.Time { return time.Now().UTC() },
		"formatTime": func(t time.Time, layout string) string { return t.Format(layout) },
		"upper":      strings.ToUpper,
	}
}

var (
	htmlFuncMap = htmpl.FuncMap(baseFuncs())
	textFuncMap = texttpl.FuncMap(baseFuncs())
)

// Render produces the HTML and plain-text bodies for a named template.
func Render(name string, data map[string]any) (html, text string, err error) {
	html, err = renderFile(name+".html.tmpl", true, data)
	if err != nil {
		return "", "", err
	}
	text, err = renderFile(name+".txt.tmpl", false, data)
	if err != nil {
		return "", "", err
	}
	return html, text, nil
}

// Subject returns the email subject line for a named template.
func Subject(name string, data map[string]any) string {
	hotel, _ := data["HotelName"].(string)
	switch name {
	case BookingConfirmed:
		return fmt.Sprintf("Booking confirmed at %s", hotel)
	case BookingCancelled:
		return fmt.Sprintf("Booking cancelled at %s", hotel)
	}
	return "StayBook notification"
}

func renderFile(filename string, isHTML bool, data any) (string, error) {
	var buf bytes.Buffer
	raw, err := FS.ReadFile(filename)
	if err != nil {
		return "", err
	}
	if isHTML {
		t, err := htmpl.New(filename).Funcs(htmlFuncMap).Parse(string(raw))
		if err != nil {
			return "", err
		}
		err = t.Execute(&buf, data)
		return buf.String(), err
	}
	t, err := texttpl.New(filename).Funcs(textFuncMap).Parse(string(raw))
	if err != nil {
		return "", err
	}
	err = t.Execute(&buf, data)
	return buf.String(), err
}
