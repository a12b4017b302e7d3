package namingapi

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/basenames/pkg/listing"
	"github.com/dmitrymomot/basenames/pkg/logger"
	"github.com/dmitrymomot/basenames/pkg/numeral"
)

// NewRouter mounts the naming endpoints on a chi router.
func NewRouter(svc *Service, log *slog.Logger) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	h := &handlers{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)
	r.Get("/names", h.listNames)
	r.Get("/names/{n}", h.getName)
	r.Get("/rationals/{num}/{den}", h.getRational)
	r.Get("/symbols/{text}", h.getSymbol)
	r.Get("/parse", h.parse)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not_found", errors.New("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method_not_allowed", errors.New("method not allowed"))
	})
	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

type handlers struct {
	svc *Service
	log *slog.Logger
}

type nameResponse struct {
	Name string `json:"name" yaml:"name"`
}

type rationalResponse struct {
	Numerator   int64  `json:"numerator" yaml:"numerator"`
	Denominator int64  `json:"denominator" yaml:"denominator"`
	Name        string `json:"name" yaml:"name"`
}

type parseResponse struct {
	Base int64 `json:"base" yaml:"base"`
}

func (h *handlers) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (h *handlers) getName(w http.ResponseWriter, r *http.Request) {
	n, err := parseNumber(chi.URLParam(r, "n"))
	if err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidNumber, err)
		return
	}
	entry, err := h.svc.Entry(n)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.log.DebugContext(r.Context(), "base named",
		logger.Base(entry.Base),
		logger.Name(entry.Name),
		logger.Abbreviation(entry.Abbreviation),
	)
	respond(w, entry, nil)
}

func (h *handlers) listNames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := parseNumberOr(q.Get("from"), 1)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidNumber, err)
		return
	}
	count, err := parseNumberOr(q.Get("count"), 20)
	if err != nil || count < 0 || count > math.MaxInt32 {
		respondError(w, http.StatusBadRequest, codeInvalidNumber, fmt.Errorf("%w: count %q", ErrInvalidNumber, q.Get("count")))
		return
	}
	format, err := listing.ParseFormat(q.Get("format"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_format", err)
		return
	}

	entries, err := h.svc.Listing(from, int(count))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	body := Envelope{
		Data: entries,
		Meta: map[string]any{"from": from, "count": len(entries)},
	}
	if format == listing.FormatYAML {
		writeYAML(w, http.StatusOK, body)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *handlers) getRational(w http.ResponseWriter, r *http.Request) {
	num, err := parseNumber(chi.URLParam(r, "num"))
	if err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidNumber, err)
		return
	}
	den, err := parseNumber(chi.URLParam(r, "den"))
	if err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidNumber, err)
		return
	}
	name, err := h.svc.Rational(num, den)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.log.DebugContext(r.Context(), "rational named", logger.Name(name))
	respond(w, rationalResponse{Numerator: num, Denominator: den, Name: name}, nil)
}

func (h *handlers) getSymbol(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	greaterThanSix, err := parseFlag(q.Get("greater_than_six"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_flag", err)
		return
	}
	oneSyllable, err := parseFlag(q.Get("one_syllable"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_flag", err)
		return
	}
	name := numeral.SymbolName(chi.URLParam(r, "text"), greaterThanSix, oneSyllable)
	respond(w, nameResponse{Name: name}, nil)
}

func (h *handlers) parse(w http.ResponseWriter, r *http.Request) {
	n, err := numeral.ParseFold(r.URL.Query().Get("name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.log.DebugContext(r.Context(), "name parsed", logger.Base(n))
	respond(w, parseResponse{Base: n}, nil)
}

// fail maps domain errors to status codes.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, numeral.ErrUnknownName):
		respondError(w, http.StatusNotFound, codeUnknownName, err)
	case errors.Is(err, ErrZeroDenominator):
		respondError(w, http.StatusBadRequest, codeInvalidNumber, err)
	case errors.Is(err, ErrBaseTooLarge),
		errors.Is(err, ErrListingTooLarge),
		errors.Is(err, listing.ErrInvalidRange):
		respondError(w, http.StatusBadRequest, codeInvalidRange, err)
	default:
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		respondError(w, http.StatusInternalServerError, codeInternal, errors.New("internal error"))
	}
}

func parseNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}

func parseNumberOr(s string, fallback int64) (int64, error) {
	if s == "" {
		return fallback, nil
	}
	return parseNumber(s)
}

func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid flag %q: %w", s, err)
	}
	return b, nil
}
