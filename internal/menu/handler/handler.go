package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"menu-service/internal/config"
	"menu-service/internal/fileio"
	"menu-service/internal/menu"
	"menu-service/internal/nutrition"
	"menu-service/internal/search"
)

// Handler обслуживает загрузку меню, выдачу блюд и поиск.
type Handler struct {
	cfg   config.Config
	store *menu.Store
}

func New(cfg config.Config, store *menu.Store) *Handler {
	return &Handler{cfg: cfg, store: store}
}

type dishesResponse struct {
	Dishes      []nutrition.Dish    `json:"dishes"`
	Suggestions []search.Suggestion `json:"suggestions,omitempty"`
}

type matchRequest struct {
	Query      string   `json:"query"`
	Candidates []string `json:"candidates"`
}

type matchResponse struct {
	Matches []bool   `json:"matches"`
	Matched []string `json:"matched"`
}

// Flatten: POST /menus/flatten — нормализация без сохранения.
func (h *Handler) Flatten(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeMenu(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dishesResponse{Dishes: nutrition.FlattenMenuDishes(raw)})
}

// Create: POST /menus — нормализует и кладёт меню в кэш.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeMenu(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	name, _ := raw["name"].(string)
	h.put(w, r, menu.NewEntry(name, "json", raw))
}

// Import: POST /menus/import — multipart "file" (csv/xls/xlsx).
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes()); err != nil {
		writeError(w, r, badRequest("bad multipart form", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, badRequest("missing file", err))
		return
	}
	defer file.Close()

	tbl, err := fileio.ReadTable(file, header.Filename, atoi(r.FormValue("header_row"), 1))
	if err != nil {
		writeError(w, r, err)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		name = header.Filename
	}
	raw, err := menu.Import(tbl, menu.Columns{
		Name:     r.FormValue("name_column"),
		Category: r.FormValue("category_column"),
	}, name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Debug().
		Str("file", header.Filename).
		Int("rows", len(tbl.Rows)).
		Strs("headers", tbl.Headers).
		Msg("menu table parsed")

	h.put(w, r, menu.NewEntry(name, sourceOf(header.Filename), raw))
}

// Get: GET /menus/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// Dishes: GET /menus/{id}/dishes?q=&category=
func (h *Handler) Dishes(w http.ResponseWriter, r *http.Request) {
	e, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query().Get("q")
	resp := dishesResponse{Dishes: e.Search(q, r.URL.Query().Get("category"))}
	if len(resp.Dishes) == 0 && strings.TrimSpace(q) != "" {
		resp.Suggestions = e.Suggest(q, h.cfg.SuggestLimit, h.cfg.SuggestThreshold)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Match: POST /search/match — какие из candidates подходят под query.
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	resp := matchResponse{
		Matches: make([]bool, len(req.Candidates)),
		Matched: make([]string, 0, len(req.Candidates)),
	}
	for i, c := range req.Candidates {
		if search.MatchesSearchQuery(c, req.Query) {
			resp.Matches[i] = true
			resp.Matched = append(resp.Matched, c)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) put(w http.ResponseWriter, r *http.Request, e *menu.Entry) {
	evicted := h.store.Put(e)
	zerolog.Ctx(r.Context()).Info().
		Str("menu_id", e.ID).
		Str("source", e.Source).
		Int("dishes", len(e.Dishes)).
		Bool("evicted", evicted).
		Msg("menu stored")
	writeJSON(w, http.StatusCreated, e)
}

// decodeMenu читает меню как произвольный JSON-объект (числа — json.Number).
func decodeMenu(r *http.Request) (map[string]any, error) {
	var raw map[string]any
	if err := decodeJSON(r, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, badRequest("menu must be a JSON object", nil)
	}
	if c, ok := raw["categories"]; ok && c != nil {
		if _, isList := c.([]any); !isList {
			return nil, badRequest("categories must be an array", nil)
		}
	}
	return raw, nil
}

func sourceOf(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		return strings.ToLower(filename[i+1:])
	}
	return "file"
}

// httpStatus сопоставляет ошибку коду ответа.
func httpStatus(err error) int {
	var mbe *http.MaxBytesError
	var bre *badRequestError
	switch {
	case errors.As(err, &mbe):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, menu.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &bre),
		errors.Is(err, fileio.ErrUnsupportedFormat),
		errors.Is(err, menu.ErrNoNameColumn):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type badRequestError struct {
	msg string
	err error
}

func (e *badRequestError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *badRequestError) Unwrap() error { return e.err }

func badRequest(msg string, err error) error { return &badRequestError{msg: msg, err: err} }
