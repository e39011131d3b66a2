package webserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"quizview/internal/filter"
	"quizview/internal/question"
	"quizview/internal/render"
)

// Bank is the outcome of loading the question bank at startup. When Err
// is set the full set is empty for the lifetime of the server.
type Bank struct {
	Records []question.Record
	Err     error
}

type handler struct {
	bank      Bank
	types     []string
	renderer  render.Renderer
	title     string
	scriptURL string
	styleURL  string
	logger    *zap.Logger
}

// NewHandler builds the HTTP handler serving the viewer page, the card
// fragment, the loaded data and the embedded assets.
func NewHandler(cfg Config, bank Bank, logger *zap.Logger) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	assets, err := loadAssets(cfg.AssetsBaseURL)
	if err != nil {
		return nil, err
	}
	scriptURL, err := assets.URL(scriptAsset)
	if err != nil {
		return nil, err
	}
	styleURL, err := assets.URL(styleAsset)
	if err != nil {
		return nil, err
	}
	if bank.Err != nil {
		bank.Records = nil
	}

	h := &handler{
		bank:      bank,
		types:     filter.Types(bank.Records),
		renderer:  render.NewRenderer(cfg.ChoiceTypes),
		title:     cfg.Title,
		scriptURL: scriptURL,
		styleURL:  styleURL,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.servePage)
	r.Get("/cards", h.serveCards)
	r.Get("/data.json", h.serveData)
	r.Get("/assets/*", assets.ServeHTTP)
	return r, nil
}

// criteriaFromRequest reads the search text and type from the query.
func criteriaFromRequest(r *http.Request) filter.Criteria {
	query := r.URL.Query()
	criteria := filter.Criteria{Search: query.Get("q"), Type: query.Get("type")}
	if criteria.Type == "" {
		criteria.Type = filter.AllTypes
	}
	return criteria
}

// servePage writes the full page; a failed load replaces the cards with
// the fixed error message.
func (h *handler) servePage(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromRequest(r)
	var body templ.Component
	if h.bank.Err != nil {
		body = render.LoadError()
	} else {
		body = h.renderer.Cards(filter.Apply(h.bank.Records, criteria))
	}
	page := render.Page(render.PageData{
		Title:     h.title,
		Search:    criteria.Search,
		Type:      criteria.Type,
		Types:     h.types,
		ScriptURL: h.scriptURL,
		StyleURL:  h.styleURL,
		Body:      body,
	})
	h.writeHTML(w, r, page)
}

// serveCards writes the card list fragment for the current criteria.
func (h *handler) serveCards(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromRequest(r)
	filtered := filter.Apply(h.bank.Records, criteria)
	h.logger.Debug("filter applied",
		zap.String("search", criteria.Search),
		zap.String("type", criteria.Type),
		zap.Int("matches", len(filtered)),
	)
	h.writeHTML(w, r, h.renderer.Cards(filtered))
}

// serveData writes the loaded records as JSON.
func (h *handler) serveData(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if h.bank.Err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": render.LoadErrorMessage})
		return
	}
	records := h.bank.Records
	if records == nil {
		records = []question.Record{}
	}
	if err := json.NewEncoder(w).Encode(records); err != nil {
		h.logger.Error("encode question bank", zap.Error(err))
	}
}

func (h *handler) writeHTML(w http.ResponseWriter, r *http.Request, component templ.Component) {
	html, err := render.String(r.Context(), component)
	if err != nil {
		h.logger.Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// requestLogger logs one line per request with zap.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
