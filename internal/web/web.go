package web

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"textlens/internal/config"
	"textlens/internal/extract"
	"textlens/internal/httputil"
	"textlens/internal/pipeline"
	"textlens/internal/process"
)

//go:embed index.html
var templateFS embed.FS

var page = template.Must(template.ParseFS(templateFS, "index.html"))

// Default slider positions, matching the UI's initial state.
const (
	defaultMinLength = 30
	defaultMaxLength = 120
)

// Handler serves the single-page UI and the JSON API.
type Handler struct {
	orch *process.Orchestrator
	cfg  config.Config
	log  *slog.Logger
}

// NewHandler builds the UI handler.
func NewHandler(orch *process.Orchestrator, cfg config.Config, log *slog.Logger) *Handler {
	return &Handler{orch: orch, cfg: cfg, log: log}
}

// Register mounts all routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.index)
	r.Post("/process", h.processForm)
	r.Post("/api/process", h.processAPI)
}

type modelOption struct {
	Value    string
	Label    string
	Selected bool
}

type formState struct {
	Text      string
	URL       string
	MinLength int
	MaxLength int
	Format    process.Format
	Questions string
}

type pageData struct {
	SummaryModels []modelOption
	QAModels      []modelOption
	Form          formState
	Result        *process.Result
	Error         string
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, defaultPageData())
}

// processForm handles the browser form post and re-renders the page with the
// run's five output fields, or an error banner.
func (h *Handler) processForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		h.renderError(w, http.StatusBadRequest, "upload too large or malformed form")
		return
	}

	req, data, err := h.requestFromForm(r)
	if err != nil {
		data.Error = err.Error()
		h.render(w, http.StatusBadRequest, data)
		return
	}

	result, err := h.orch.Run(r.Context(), req)
	if err != nil {
		h.log.Error("run failed", "err", err)
		data.Error = runErrorMessage(err)
		h.render(w, runErrorStatus(err), data)
		return
	}

	data.Result = &result
	h.render(w, http.StatusOK, data)
}

func (h *Handler) requestFromForm(r *http.Request) (process.Request, pageData, error) {
	form := formState{
		Text:      r.FormValue("text"),
		URL:       r.FormValue("url"),
		MinLength: intFormValue(r, "min_length", defaultMinLength),
		MaxLength: intFormValue(r, "max_length", defaultMaxLength),
		Format:    process.ParseFormat(r.FormValue("format")),
		Questions: r.FormValue("questions"),
	}

	summaryModel := pipeline.DefaultSummaryModel
	if v := r.FormValue("summary_model"); v != "" {
		m, err := pipeline.ParseSummaryModel(v)
		if err != nil {
			return process.Request{}, pageDataFor(form, summaryModel, pipeline.DefaultQAModel), err
		}
		summaryModel = m
	}

	qaModel := pipeline.DefaultQAModel
	if v := r.FormValue("qa_model"); v != "" {
		m, err := pipeline.ParseQAModel(v)
		if err != nil {
			return process.Request{}, pageDataFor(form, summaryModel, qaModel), err
		}
		qaModel = m
	}

	req := process.Request{
		Text:         form.Text,
		URL:          form.URL,
		SummaryModel: summaryModel,
		QAModel:      qaModel,
		MinLength:    form.MinLength,
		MaxLength:    form.MaxLength,
		Format:       form.Format,
		Questions:    form.Questions,
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		content, err := readUpload(file, h.cfg.MaxUploadSize)
		if err != nil {
			return process.Request{}, pageDataFor(form, summaryModel, qaModel), err
		}
		req.FileName = header.Filename
		req.FileContent = content
	}

	return req, pageDataFor(form, summaryModel, qaModel), nil
}

func readUpload(file multipart.File, limit int64) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, errors.New("failed to read uploaded file")
	}
	if int64(len(content)) > limit {
		return nil, errors.New("uploaded file exceeds the size limit")
	}
	return content, nil
}

// apiRequest is the JSON variant of the form. File uploads stay on the
// multipart endpoint.
type apiRequest struct {
	Text         string `json:"text"`
	URL          string `json:"url" validate:"omitempty,url"`
	SummaryModel string `json:"summary_model"`
	QAModel      string `json:"qa_model"`
	MinLength    int    `json:"min_length" validate:"omitempty,min=5,max=300"`
	MaxLength    int    `json:"max_length" validate:"omitempty,min=50,max=1024"`
	Format       string `json:"format"`
	Questions    string `json:"questions"`
}

func (h *Handler) processAPI(w http.ResponseWriter, r *http.Request) {
	var req apiRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.Fail(h.log, w, "invalid payload", err, http.StatusBadRequest)
		return
	}
	if err := httputil.Validator.Struct(&req); err != nil {
		httputil.ValidationError(h.log, w, err)
		return
	}

	summaryModel := pipeline.DefaultSummaryModel
	if req.SummaryModel != "" {
		m, err := pipeline.ParseSummaryModel(req.SummaryModel)
		if err != nil {
			httputil.Fail(h.log, w, err.Error(), err, http.StatusBadRequest)
			return
		}
		summaryModel = m
	}
	qaModel := pipeline.DefaultQAModel
	if req.QAModel != "" {
		m, err := pipeline.ParseQAModel(req.QAModel)
		if err != nil {
			httputil.Fail(h.log, w, err.Error(), err, http.StatusBadRequest)
			return
		}
		qaModel = m
	}
	if req.MinLength == 0 {
		req.MinLength = defaultMinLength
	}
	if req.MaxLength == 0 {
		req.MaxLength = defaultMaxLength
	}

	result, err := h.orch.Run(r.Context(), process.Request{
		Text:         req.Text,
		URL:          req.URL,
		SummaryModel: summaryModel,
		QAModel:      qaModel,
		MinLength:    req.MinLength,
		MaxLength:    req.MaxLength,
		Format:       process.ParseFormat(req.Format),
		Questions:    req.Questions,
	})
	if err != nil {
		httputil.Fail(h.log, w, runErrorMessage(err), err, runErrorStatus(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func runErrorMessage(err error) string {
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		return "unsupported file format (only .txt, .pdf and .docx are accepted)"
	}
	return "processing failed: " + err.Error()
}

func runErrorStatus(err error) int {
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func (h *Handler) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Execute(w, data); err != nil {
		h.log.Error("template render failed", "err", err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, status int, msg string) {
	data := defaultPageData()
	data.Error = msg
	h.render(w, status, data)
}

func defaultPageData() pageData {
	return pageDataFor(formState{
		MinLength: defaultMinLength,
		MaxLength: defaultMaxLength,
		Format:    process.FormatParagraph,
	}, pipeline.DefaultSummaryModel, pipeline.DefaultQAModel)
}

func pageDataFor(form formState, summaryModel pipeline.SummaryModel, qaModel pipeline.QAModel) pageData {
	data := pageData{Form: form}
	for _, m := range pipeline.SummaryModels {
		data.SummaryModels = append(data.SummaryModels, modelOption{
			Value:    string(m),
			Label:    m.Label(),
			Selected: m == summaryModel,
		})
	}
	for _, m := range pipeline.QAModels {
		data.QAModels = append(data.QAModels, modelOption{
			Value:    string(m),
			Label:    m.Label(),
			Selected: m == qaModel,
		})
	}
	return data
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func intFormValue(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil {
		return fallback
	}
	return v
}
