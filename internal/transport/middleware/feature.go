package middleware

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// FlashCookie carries the denial message to the page the client is
// redirected to.
const FlashCookie = "flash"

type featureChecker interface {
	IsEnabled(ctx context.Context, feature string) (bool, error)
}

// DenyOptions controls how a disabled feature is reported.
type DenyOptions struct {
	// RedirectURL receives browser clients. Empty means "/".
	RedirectURL string
	// Message is shown to the user. Empty uses a generic text.
	Message string
	// Logger receives lookup failures only. Denials are not logged.
	Logger *slog.Logger
}

// RequireFeature runs next only when feature is licensed. A disabled feature
// never reaches next: browsers get 303 to RedirectURL with a flash cookie,
// everyone else 403 with error "feature_denied". If the lookup itself fails
// the gate stays closed with 503.
func RequireFeature(feature string, checker featureChecker, opts DenyOptions) Middleware {
	if opts.RedirectURL == "" {
		opts.RedirectURL = "/"
	}
	if opts.Message == "" {
		opts.Message = "Your license does not include the " + feature + " feature."
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			enabled, err := checker.IsEnabled(r.Context(), feature)
			if err != nil {
				if opts.Logger != nil {
					opts.Logger.ErrorContext(r.Context(), "feature lookup failed",
						slog.String("feature", feature),
						slog.String("error", err.Error()),
					)
				}
				writeError(w, http.StatusServiceUnavailable, "feature_unavailable",
					"feature availability could not be determined")
				return
			}
			if !enabled {
				deny(w, r, opts)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, opts DenyOptions) {
	if wantsHTML(r) {
		http.SetCookie(w, &http.Cookie{
			Name:     FlashCookie,
			Value:    url.QueryEscape(opts.Message),
			Path:     "/",
			MaxAge:   60,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, opts.RedirectURL, http.StatusSeeOther)
		return
	}
	writeError(w, http.StatusForbidden, "feature_denied", opts.Message)
}

// wantsHTML reports whether the first acceptable media type is text/html.
func wantsHTML(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case "text/html", "application/xhtml+xml":
			return true
		case "application/json", "*/*":
			return false
		}
	}
	return false
}
