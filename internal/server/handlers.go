package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/c7harry/bayform/internal/rendercache"
	"github.com/c7harry/bayform/internal/rendering"
	"github.com/c7harry/bayform/internal/tailor"
	"github.com/c7harry/bayform/internal/types"
	"github.com/c7harry/bayform/schemas"
)

// renderRequest is the body for the render endpoints. Exactly one of
// ResumeID and Document selects the input.
type renderRequest struct {
	ResumeID string                `json:"resumeId,omitempty"`
	Document *types.ResumeDocument `json:"document,omitempty"`
	Template string                `json:"template"`
}

// tailorRequest is the body for POST /tailor. Exactly one of PostingURL
// and PostingText supplies the job posting.
type tailorRequest struct {
	ResumeID    string                `json:"resumeId,omitempty"`
	Document    *types.ResumeDocument `json:"document,omitempty"`
	PostingURL  string                `json:"postingUrl,omitempty"`
	PostingText string                `json:"postingText,omitempty"`
	Limit       int                   `json:"limit,omitempty"`
}

// resolveDocument returns the document named by the request, loading it
// from the repository when only an id is given.
func (s *Server) resolveDocument(r *http.Request, id string, doc *types.ResumeDocument) (*types.ResumeDocument, error) {
	if doc != nil && id != "" {
		return nil, &ErrValidation{Field: "resumeId", Message: "resumeId and document are mutually exclusive"}
	}
	if doc != nil {
		return doc, nil
	}
	if id == "" {
		return nil, &ErrValidation{Field: "document", Message: "either resumeId or document is required"}
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, &ErrValidation{Field: "resumeId", Message: "not a valid UUID"}
	}
	return s.repo.Get(r.Context(), parsed)
}

// renderCached renders through the cache so repeated requests for the
// same document and template reuse the first result.
func (s *Server) renderCached(r *http.Request, doc types.ResumeDocument, req rendering.Request) ([]byte, error) {
	key, err := rendercache.Key(doc, string(req.Format), req.Template)
	if err == nil {
		if artifact, cacheErr := s.cache.Get(r.Context(), key); cacheErr == nil {
			return artifact, nil
		}
	}

	out, err := rendering.Render(doc, req)
	if err != nil {
		return nil, err
	}

	var artifact []byte
	switch req.Format {
	case rendering.FormatLaTeX:
		artifact = []byte(out.LaTeX)
	case rendering.FormatPDF:
		artifact = out.PDF
	default:
		artifact = []byte(out.Preview)
	}

	if key != "" {
		if cacheErr := s.cache.Set(r.Context(), key, artifact); cacheErr != nil {
			s.logger.Warn("caching render artifact", "err", cacheErr)
		}
	}
	return artifact, nil
}

func (s *Server) handleRenderLaTeX(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "(body)", Message: "invalid JSON"})
		return
	}

	doc, err := s.resolveDocument(r, req.ResumeID, req.Document)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	artifact, err := s.renderCached(r, *doc, rendering.Request{
		Format:   rendering.FormatLaTeX,
		Template: req.Template,
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"latex": string(artifact)})
}

func (s *Server) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "(body)", Message: "invalid JSON"})
		return
	}

	doc, err := s.resolveDocument(r, req.ResumeID, req.Document)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	artifact, err := s.renderCached(r, *doc, rendering.Request{
		Format:   rendering.FormatPDF,
		Template: req.Template,
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact); err != nil {
		s.logger.Error("writing PDF response", "err", err)
	}
}

func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req tailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "(body)", Message: "invalid JSON"})
		return
	}
	if req.PostingURL != "" && req.PostingText != "" {
		s.errorResponse(w, &ErrValidation{Field: "postingUrl", Message: "postingUrl and postingText are mutually exclusive"})
		return
	}
	if req.PostingURL == "" && req.PostingText == "" {
		s.errorResponse(w, &ErrValidation{Field: "postingText", Message: "either postingUrl or postingText is required"})
		return
	}

	doc, err := s.resolveDocument(r, req.ResumeID, req.Document)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	text := req.PostingText
	if req.PostingURL != "" {
		text, err = tailor.FetchPosting(r.Context(), req.PostingURL)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, tailor.Analyze(*doc, text, req.Limit))
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	docs, err := s.repo.List(r.Context())
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if docs == nil {
		docs = []types.ResumeDocument{}
	}
	s.jsonResponse(w, http.StatusOK, docs)
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "(body)", Message: "failed to read body"})
		return
	}

	if err := schemas.ValidateResume(body); err != nil {
		s.errorResponse(w, err)
		return
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "(body)", Message: "invalid JSON"})
		return
	}
	if err := doc.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}

	if err := s.repo.Put(r.Context(), doc); err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": doc.ID.String()})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "id", Message: "not a valid UUID"})
		return
	}

	doc, err := s.repo.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "id", Message: "not a valid UUID"})
		return
	}

	// The resume must already exist; PUT does not create.
	if _, err := s.repo.Get(r.Context(), id); err != nil {
		s.errorResponse(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "(body)", Message: "failed to read body"})
		return
	}
	if err := schemas.ValidateResume(body); err != nil {
		s.errorResponse(w, err)
		return
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "(body)", Message: "invalid JSON"})
		return
	}
	if err := doc.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}
	doc.ID = id

	if err := s.repo.Put(r.Context(), doc); err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"id": doc.ID.String()})
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "id", Message: "not a valid UUID"})
		return
	}

	if err := s.repo.Delete(r.Context(), id); err != nil {
		s.errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
