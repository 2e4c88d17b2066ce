// Package markup renders translated message text written in Markdown into
// sanitized HTML.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	defaultRenderer *Renderer
	strictPolicy    *bluemonday.Policy
	initOnce        sync.Once
)

func initDefaults() {
	initOnce.Do(func() {
		defaultRenderer = New()
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// MessagePolicy allows the formatting a message may carry: emphasis, code,
// links and simple lists. Links get rel="nofollow".
func MessagePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"p", "br",
		"strong", "b", "em", "i", "del",
		"ul", "ol", "li",
		"code", "pre", "blockquote",
	)
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Renderer converts Markdown to HTML and sanitizes the result.
// It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPolicy replaces the sanitization policy. Nil is ignored.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if p != nil {
			r.policy = p
		}
	}
}

// New returns a renderer with GFM strikethrough and autolinks enabled.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		),
		policy: MessagePolicy(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Block renders src as block content (paragraphs, lists).
func (r *Renderer) Block(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Inline renders src and unwraps a single surrounding paragraph, so the
// result can be placed inside an existing element.
func (r *Renderer) Inline(src string) (template.HTML, error) {
	out, err := r.Block(src)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if inner, ok := strings.CutPrefix(s, "<p>"); ok {
		if inner, ok = strings.CutSuffix(inner, "</p>"); ok && !strings.Contains(inner, "<p>") {
			s = inner
		}
	}
	return template.HTML(s), nil
}

// Inline renders src with the default renderer, see Renderer.Inline.
func Inline(src string) (template.HTML, error) {
	initDefaults()
	return defaultRenderer.Inline(src)
}

// Block renders src with the default renderer, see Renderer.Block.
func Block(src string) (template.HTML, error) {
	initDefaults()
	return defaultRenderer.Block(src)
}

// Strip removes all markup and returns plain text.
func Strip(s string) string {
	initDefaults()
	return strictPolicy.Sanitize(s)
}
