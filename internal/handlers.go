package internal

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/tldr/middlewares"
	"github.com/dmitrymomot/tldr/pkg/htmx"
	"github.com/dmitrymomot/tldr/pkg/i18n"
	"github.com/dmitrymomot/tldr/pkg/logger"
)

const (
	counterMin     = 0
	counterMax     = 1488
	defaultCounter = 1

	localeCookieMaxAge = 365 * 24 * 60 * 60
)

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	tr := middlewares.GetTranslator(r.Context())
	state := s.store.State()
	count := parseCount(r.URL.Query().Get("count"))
	now := s.now()

	view := pageView{
		Lang:     tr.Dictionary().LanguageTag,
		Hue:      (count * 10) % 360,
		Greeting: s.inline(r, tr.S("Hello!")),
		Counter:  s.inline(r, tr.S("You sucked {} times.", count)),
		Queue:    s.inline(r, tr.S("Your place in the queue: {}.", count)),
		Uptime: tr.S("Server started {}.", i18n.With(s.started, i18n.FormatOptions{
			Origin:       now,
			MaximumValue: i18n.Ptr(1.0),
			MaximumUnit:  i18n.UnitDay,
		})),
		Language: tr.S("Language"),
		Counters: []counterLink{
			{Label: "-", Count: max(count-1, counterMin)},
			{Label: "+", Count: min(count+1, counterMax)},
			{Label: "0", Count: counterMin},
			{Label: strconv.Itoa(counterMax), Count: counterMax},
		},
	}
	for _, id := range state.Library.Tags() {
		view.Locales = append(view.Locales, localeLink{
			ID:     id,
			Name:   state.Library[id].DisplayName,
			Active: id == tr.Locale(),
		})
	}

	templ.Handler(indexPage(view)).ServeHTTP(w, r)
}

// inline renders message markup, falling back to escaped text.
func (s *Server) inline(r *http.Request, msg string) template.HTML {
	out, err := s.markup.Inline(msg)
	if err != nil {
		s.log.WarnContext(r.Context(), "failed to render message markup", logger.Error(err))
		return template.HTML(template.HTMLEscapeString(msg))
	}
	return out
}

func parseCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultCounter
	}
	return min(max(n, counterMin), counterMax)
}

type localeResponse struct {
	ID     string `json:"id"`
	Tag    string `json:"tag"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func (s *Server) listLocales(w http.ResponseWriter, r *http.Request) {
	active := middlewares.GetLocale(r.Context())
	lib := s.store.State().Library

	resp := make([]localeResponse, 0, len(lib))
	for _, id := range lib.Tags() {
		resp = append(resp, localeResponse{
			ID:     id,
			Tag:    lib[id].LanguageTag,
			Name:   lib[id].DisplayName,
			Active: id == active,
		})
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

type translateResponse struct {
	Locale string `json:"locale"`
	ID     string `json:"id"`
	Text   string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// translate renders ?message= with the repeated ?arg= values. Numeric args
// are formatted as numbers and RFC 3339 args as dates.
func (s *Server) translate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	message := q.Get("message")
	if message == "" {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	args := make([]any, 0, len(q["arg"]))
	for _, raw := range q["arg"] {
		args = append(args, parseArg(raw))
	}

	tr := middlewares.GetTranslator(r.Context())
	s.writeJSON(w, r, http.StatusOK, translateResponse{
		Locale: tr.Locale(),
		ID:     message,
		Text:   tr.S(message, args...),
	})
}

func parseArg(raw string) any {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return raw
}

// setLocale stores the chosen locale in a cookie and sends the client back.
func (s *Server) setLocale(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = r.PostFormValue("lang")
	}
	if _, ok := s.store.State().Library[lang]; !ok {
		http.Error(w, "unknown locale", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.DefaultLocaleCookie,
		Value:    lang,
		Path:     "/",
		MaxAge:   localeCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	htmx.RedirectBack(w, r, "/")
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err), slog.Int("status", status))
	}
}
