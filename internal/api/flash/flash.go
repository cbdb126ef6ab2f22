// Package flash carries one-time toasts across a Post/Redirect/Get cycle.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
)

// CookieName is the cookie used for one-time toasts
const CookieName = "tb_flash"

// Write stores a toast cookie for the next page render
func Write(w http.ResponseWriter, toast entities.Toast, secure bool) {
	if w == nil {
		return
	}
	normalized, ok := normalize(toast)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear reads the pending toast and expires its cookie
func ReadAndClear(w http.ResponseWriter, r *http.Request) (entities.Toast, bool) {
	if r == nil {
		return entities.Toast{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return entities.Toast{}, false
	}
	if w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
	return decode(cookie.Value)
}

func decode(raw string) (entities.Toast, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return entities.Toast{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return entities.Toast{}, false
	}
	var toast entities.Toast
	if err := json.Unmarshal(decoded, &toast); err != nil {
		return entities.Toast{}, false
	}
	return normalize(toast)
}

func normalize(toast entities.Toast) (entities.Toast, bool) {
	toast.Title = strings.TrimSpace(toast.Title)
	toast.Description = strings.TrimSpace(toast.Description)
	toast.Kind = entities.ToastKind(strings.ToLower(strings.TrimSpace(string(toast.Kind))))
	if !toast.Valid() {
		return entities.Toast{}, false
	}
	return toast, true
}
