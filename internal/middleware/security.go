// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
)

// contentSecurityPolicy lists what the playground pages actually load:
// htmx from unpkg, Bootstrap assets from jsdelivr, the Tailwind runtime,
// and the inline style/script blocks that user component code carries
// inside the sandboxed preview frame. Thumbnails may be served from an
// external S3 endpoint, hence the broad img-src. frame-src and
// frame-ancestors stay same-origin so only the editor page can embed
// /preview/frame.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' 'unsafe-inline' https://unpkg.com https://cdn.jsdelivr.net https://cdn.tailwindcss.com",
	"style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net",
	"img-src 'self' data: https:",
	"font-src 'self' data:",
	"connect-src 'self'",
	"frame-src 'self'",
	"frame-ancestors 'self'",
}, "; ")

// SecureHeaders adds security-related HTTP headers to every response.
// The preview iframe relies on its sandbox attribute for isolation; the
// CSP restricts the host pages and the frame document to the CDNs they
// are built against.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		h.Set("Content-Security-Policy", contentSecurityPolicy)

		// Prevent the browser from MIME-sniffing the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// Same-origin framing only. frame-ancestors above is the modern
		// equivalent; this covers older browsers.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// Control what information is sent in the Referer header.
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
