package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"eventmatch/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// templateRenderer implements domain.EmailTemplateRenderer using embedded template files.
// Each email "name" is three files: name_subject.txt, name.html and name.txt.
type templateRenderer struct {
	html *template.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses the embedded templates once and returns a renderer for them.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{
		html: template.Must(template.ParseFS(templateFS, "templates/*.html")),
		text: texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt")),
	}
}

// Render executes the named template (e.g. "organizer_welcome") with data.
// The subject is collapsed to a single line.
func (r *templateRenderer) Render(templateName string, data any) (*domain.EmailMessage, error) {
	var subject, html, text bytes.Buffer
	if err := r.text.ExecuteTemplate(&subject, templateName+"_subject.txt", data); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	if err := r.html.ExecuteTemplate(&html, templateName+".html", data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	if err := r.text.ExecuteTemplate(&text, templateName+".txt", data); err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	return &domain.EmailMessage{
		Subject:  strings.Join(strings.Fields(subject.String()), " "),
		HTMLBody: html.String(),
		TextBody: text.String(),
		Template: templateName,
	}, nil
}
