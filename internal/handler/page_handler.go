package handler

import (
	"html/template"
	"net/http"

	"github.com/renanduart3/promptopia-creation-platform/internal/domain"
)

const landingTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Promptopia - Turn scripts into image prompts</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
</head>
<body>
    <div class="container text-center mt-5">
        <h1>Promptopia</h1>
        <p class="lead">Paste your script, get image-generation prompts for every scene.</p>
        <p>Up to {{.WordLimit}} words per script. Subscribe for {{.Price.Amount}}.</p>
        <textarea id="script" class="form-control my-3" rows="10" placeholder="Paste your script here..."></textarea>
        <button id="generate" class="btn btn-primary" disabled>Generate prompts</button>
        <button id="subscribe" class="btn btn-outline-primary">Subscribe</button>
    </div>
</body>
</html>
`

// PageHandler serves the landing page.
type PageHandler struct {
	logger domain.Logger
	tmpl   *template.Template
}

func NewPageHandler(logger domain.Logger) *PageHandler {
	return &PageHandler{
		logger: logger,
		tmpl:   template.Must(template.New("landing").Parse(landingTemplate)),
	}
}

func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	data := struct {
		WordLimit int
		Price     domain.Price
	}{
		WordLimit: domain.WordLimit,
		Price:     domain.PriceForRegion(""),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		h.logger.Error("Failed to render landing page", err)
	}
}
