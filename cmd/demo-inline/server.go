package main

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/nstrayer/tabulator-output-binding/pkg/dataframe"
	"github.com/nstrayer/tabulator-output-binding/pkg/tabulator"
)

//go:embed page.html
var pageHTML string

// Server wires the demo page, the bridge module and the table output
// endpoint onto one mux. This variant registers the widget assets globally
// in the page head.
type Server struct {
	config  *Config
	logger  *slog.Logger
	page    *template.Template
	binding *tabulator.Binding
	mux     *http.ServeMux
}

type pageData struct {
	Title       string
	HeadAssets  template.HTML
	Output      template.HTML
	DefaultRows int
	MaxRows     int
}

func NewServer(config *Config, logger *slog.Logger) (*Server, error) {
	page, err := template.New("page").Parse(pageHTML)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config: config,
		logger: logger,
		page:   page,
		mux:    http.NewServeMux(),
	}
	s.binding = tabulator.NewBinding(s.tableValue)

	s.mux.HandleFunc("/", s.handlePage)
	s.mux.Handle(tabulator.ComponentPath, tabulator.ComponentHandler())
	s.mux.Handle("/api/table", tabulator.Handler(s.binding, logger))
	return s, nil
}

// tableValue is the data-producing function behind the table output: it
// re-reads the dataset on every rendering cycle and keeps the first n rows,
// where n comes from the slider.
func (s *Server) tableValue(ctx context.Context) (any, error) {
	frame, err := dataframe.ReadCSVFile(s.config.DatasetPath)
	if err != nil {
		return nil, err
	}
	return frame.Head(s.clampRows(ctx))
}

func (s *Server) clampRows(ctx context.Context) int {
	rows, ok := tabulator.RowsFromContext(ctx)
	if !ok {
		return s.config.DefaultRows
	}
	if rows < 1 {
		return 1
	}
	if rows > s.config.MaxRows {
		return s.config.MaxRows
	}
	return rows
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := pageData{
		Title:       "Tabulator output binding: head assets",
		HeadAssets:  tabulator.HeadAssets(tabulator.ComponentPath),
		Output:      tabulator.Output("tabulatorTable", "/api/table", "rows", s.config.TableHeight),
		DefaultRows: s.config.DefaultRows,
		MaxRows:     s.config.MaxRows,
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("Failed to execute page template", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
