package http

import "github.com/bokyaa/portfolio-backend/internal/projects/service"

// Handler bundles the dependencies for the project HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

// projectReq is the admin form payload for create and update. Tags arrive
// as the raw comma-separated string, images as already-normalized entries
// (embedded payloads or URLs).
type projectReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Tags        string   `json:"tags"`
	Link        string   `json:"link"`
	GithubURL   string   `json:"githubUrl"`
	Category    string   `json:"category"`
}

func (r projectReq) input() service.Input {
	return service.Input{
		Title:       r.Title,
		Description: r.Description,
		Images:      r.Images,
		Tags:        r.Tags,
		Link:        r.Link,
		GithubURL:   r.GithubURL,
		Category:    r.Category,
	}
}
