package controllers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	chimw "github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/drstein77/techaurex/internal/catalog"
	"github.com/drstein77/techaurex/internal/compress"
	"github.com/drstein77/techaurex/internal/middleware"
	"github.com/drstein77/techaurex/internal/models"
	"github.com/drstein77/techaurex/internal/nav"
	"github.com/drstein77/techaurex/internal/storage"
)

const exportFileName = "catalog.csv"

// Storage serves catalog pages.
type Storage interface {
	Home(context.Context) (*models.HomePage, error)
	FilterProducts(context.Context, models.Criteria) (*models.ListPage, error)
	Latest(context.Context) (*models.ListPage, error)
	Category(context.Context, string, models.Criteria) (*models.CategoryPage, error)
	Search(context.Context, string) (*models.SearchPage, error)
	Detail(context.Context, int) (*models.DetailPage, error)
	Export(context.Context) ([]models.Product, error)
	Ping(context.Context) bool
}

type Log interface {
	Info(string, ...zap.Field)
	Error(string, ...zap.Field)
}

// BaseController serves the catalog API.
type BaseController struct {
	ctx          context.Context
	storage      Storage
	validate     *validator.Validate
	feedbackRate int
	log          Log
}

func NewBaseController(ctx context.Context, storage Storage, log Log, feedbackRate int) *BaseController {
	return &BaseController{
		ctx:          ctx,
		storage:      storage,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		feedbackRate: feedbackRate,
		log:          log,
	}
}

// Route sets up the routes for the BaseController
func (h *BaseController) Route() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(h.log))
	r.Use(chimw.Recoverer)

	r.Get("/ping", h.ping)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", h.getHome)
		r.Get("/products", h.getProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/latest", h.getLatest)
		r.Get("/categories/{slug}", h.getCategory)
		r.Get("/search", h.getSearch)
		r.Get("/nav", h.getNav)

		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(h.feedbackRate, time.Minute))
			r.Post("/feedback", h.postFeedback)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.ArchiveTypeMiddleware)
			r.Get("/export", h.getExport)
		})
	})

	return r
}

func (h *BaseController) ping(w http.ResponseWriter, r *http.Request) {
	if !h.storage.Ping(r.Context()) {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *BaseController) getHome(w http.ResponseWriter, r *http.Request) {
	page, err := h.storage.Home(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *BaseController) getProducts(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	page, err := h.storage.FilterProducts(r.Context(), criteria)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *BaseController) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid product id", chi.URLParam(r, "id"))
		return
	}
	page, err := h.storage.Detail(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *BaseController) getLatest(w http.ResponseWriter, r *http.Request) {
	page, err := h.storage.Latest(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *BaseController) getCategory(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	page, err := h.storage.Category(r.Context(), chi.URLParam(r, "slug"), criteria)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *BaseController) getSearch(w http.ResponseWriter, r *http.Request) {
	page, err := h.storage.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *BaseController) getNav(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nav.Build(r.URL.Query().Get("path"), catalog.CategorySlug))
}

func (h *BaseController) postFeedback(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var fb models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		writeProblem(w, http.StatusBadRequest, "Missing info", "Please fill all the fields.")
		return
	}
	fb.Name = strings.TrimSpace(fb.Name)
	fb.Email = strings.TrimSpace(fb.Email)
	fb.Message = strings.TrimSpace(fb.Message)
	if err := h.validate.Struct(fb); err != nil {
		writeProblem(w, http.StatusBadRequest, "Missing info", "Please fill all the fields.")
		return
	}

	receipt := models.FeedbackReceipt{
		ID:      uuid.NewString(),
		Title:   "Feedback sent",
		Message: "Thanks for reaching out! We will get back to you soon.",
	}
	h.log.Info("feedback received",
		zap.String("id", receipt.ID),
		zap.String("email", fb.Email),
		zap.Int("message_len", len(fb.Message)),
	)
	writeJSON(w, http.StatusAccepted, receipt)
}

func (h *BaseController) getExport(w http.ResponseWriter, r *http.Request) {
	products, err := h.storage.Export(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	archiveType := middleware.ArchiveType(r.Context())
	w.Header().Set("Content-Type", compress.ContentType(archiveType))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=catalog.%s", archiveType))

	aw, err := compress.NewWriter(archiveType, w, exportFileName)
	if err != nil {
		h.fail(w, err)
		return
	}
	if err := writeCSV(aw, products); err != nil {
		h.log.Error("export failed", zap.Error(err))
		return
	}
	if err := aw.Close(); err != nil {
		h.log.Error("export failed", zap.Error(err))
	}
}

func writeCSV(w io.Writer, products []models.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "category", "company", "price", "date"}); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Category,
			p.Company,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			p.Date.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (h *BaseController) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, context.Canceled):
		writeProblem(w, http.StatusServiceUnavailable, "Request canceled", "")
	default:
		h.log.Error("request failed", zap.Error(err))
		writeProblem(w, http.StatusInternalServerError, "Internal error", "")
	}
}

// parseCriteria reads category, company, min_price and max_price. Absent or
// blank bounds are no constraint.
func parseCriteria(r *http.Request) (models.Criteria, error) {
	q := r.URL.Query()
	c := models.Criteria{
		Category: strings.TrimSpace(q.Get("category")),
		Company:  strings.TrimSpace(q.Get("company")),
	}

	var err error
	if c.MinPrice, err = parseBound(q.Get("min_price")); err != nil {
		return c, fmt.Errorf("min_price: %w", err)
	}
	if c.MaxPrice, err = parseBound(q.Get("max_price")); err != nil {
		return c, fmt.Errorf("max_price: %w", err)
	}
	return c, nil
}

func parseBound(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%q is not a price", s)
	}
	if v < 0 {
		return nil, errors.New("must not be negative")
	}
	return models.Bound(v), nil
}
