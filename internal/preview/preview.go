// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview assembles the isolated documents the playground renders
// user snippets in. User HTML/CSS/JS is interpolated verbatim — no
// sanitization, since filtering would break legitimate framework markup.
// Isolation is structural: the hosting page renders these documents in an
// iframe restricted by its sandbox attribute, so the snippet can never
// reach the host page, its cookies, or its storage.
package preview

import (
	"strings"

	"uikitlab/internal/models"
)

// Dependency headers per style dialect. Bootstrap needs its stylesheet
// and bundle script; Tailwind loads the CDN runtime with a trivial
// inline config; native snippets get nothing.
const (
	bootstrapHeader = `<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet" /><script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>`
	tailwindHeader  = `<script src="https://cdn.tailwindcss.com"></script><script>tailwind.config={theme:{extend:{}}}</script>`

	// baseStyle is the baseline reset shared by all dialects: box-sizing
	// normalization, full-height document, a system font stack, and a
	// fixed padding so bare snippets don't hug the frame edge.
	baseStyle = `<style>*,*:before,*:after{box-sizing:border-box}html,body{height:100%}body{padding:16px;font-family:ui-sans-serif,system-ui,Segoe UI,Roboto}</style>`

	docHead = `<!doctype html><html><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/>`
)

// SandboxAttr is the iframe sandbox value the hosting page must use:
// script execution and form submission stay enabled for snippet
// interactivity, same-origin is required so the Tailwind runtime can
// introspect the frame's document. Everything else stays locked.
const SandboxAttr = "allow-scripts allow-forms allow-same-origin"

// DependencyHeader returns the framework header for a style dialect.
// Unknown styles behave like native.
func DependencyHeader(style models.StyleKind) string {
	switch style {
	case models.StyleBootstrap:
		return bootstrapHeader
	case models.StyleTailwind:
		return tailwindHeader
	}
	return ""
}

// BuildDocument assembles the complete standalone document for a snippet:
// dependency header, baseline reset, the user's css in a <style> block,
// the user's html as the body, and the user's js in a trailing <script>.
// Pure function — identical inputs always produce the identical string.
// Empty code fields are valid and yield a structurally complete document.
func BuildDocument(style models.StyleKind, code models.ComponentCode) string {
	var b strings.Builder
	b.Grow(len(docHead) + len(baseStyle) + len(code.HTML) + len(code.CSS) + len(code.JS) + 256)

	b.WriteString(docHead)
	b.WriteString(baseStyle)
	b.WriteString(DependencyHeader(style))
	b.WriteString("<style>")
	b.WriteString(code.CSS)
	b.WriteString("</style></head><body>")
	b.WriteString(code.HTML)
	b.WriteString("<script>")
	b.WriteString(code.JS)
	b.WriteString("</script></body></html>")
	return b.String()
}
