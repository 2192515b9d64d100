package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c7harry/bayform/internal/store"
	"github.com/c7harry/bayform/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	repo, err := store.NewFileStore(filepath.Join(t.TempDir(), "resumes.json"), time.Now)
	require.NoError(t, err)
	return New(Config{Addr: ":0", Repo: repo})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func sampleDocument() map[string]any {
	return map[string]any{
		"personalInfo": map[string]any{
			"fullName":   "Jane Doe",
			"profession": "Software Engineer",
		},
		"skills": []map[string]any{
			{"name": "Go", "category": "Languages"},
		},
	}
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest("OPTIONS", "/resumes", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCreateResume(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/resumes", sampleDocument())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp["id"])
	assert.NoError(t, err)
}

func TestCreateResume_SchemaRejectsMissingName(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/resumes", map[string]any{
		"personalInfo": map[string]any{},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "fullName")
}

func TestCreateResume_RejectsInvalidEmail(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/resumes", map[string]any{
		"personalInfo": map[string]any{
			"fullName": "Jane Doe",
			"email":    "definitely-not-an-email",
		},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email")
}

func TestUpdateResume_RejectsInvalidQRType(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, "POST", "/resumes", sampleDocument())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	bad := sampleDocument()
	bad["personalInfo"].(map[string]any)["qrCode"] = map[string]any{
		"enabled": true,
		"type":    "linkedin",
	}
	rec = doJSON(t, s, "PUT", "/resumes/"+created["id"], bad)
	require.Equal(t, http.StatusOK, rec.Code)

	// The schema rejects unknown QR types before the struct validator runs,
	// so both layers must agree that "twitter" is invalid.
	bad["personalInfo"].(map[string]any)["qrCode"] = map[string]any{
		"enabled": true,
		"type":    "twitter",
	}
	rec = doJSON(t, s, "PUT", "/resumes/"+created["id"], bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetResume_NotFound(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "GET", "/resumes/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetResume_BadID(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "GET", "/resumes/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeCRUDRoundTrip(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, "POST", "/resumes", sampleDocument())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["id"]

	rec = doJSON(t, s, "GET", "/resumes/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var doc types.ResumeDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)

	updated := sampleDocument()
	updated["personalInfo"].(map[string]any)["fullName"] = "Jane Q. Doe"
	rec = doJSON(t, s, "PUT", "/resumes/"+id, updated)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, "GET", "/resumes/"+id, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Jane Q. Doe", doc.PersonalInfo.FullName)

	rec = doJSON(t, s, "DELETE", "/resumes/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, "GET", "/resumes/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateResume_MissingIsNotFound(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "PUT", "/resumes/"+uuid.NewString(), sampleDocument())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListResumes_EmptyIsArray(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "GET", "/resumes", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRenderLaTeX_InlineDocument(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/render/latex", map[string]any{
		"document": sampleDocument(),
		"template": "modern",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["latex"], `\documentclass`)
	assert.Contains(t, resp["latex"], "Jane Doe")
}

func TestRenderLaTeX_UnknownTemplate(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/render/latex", map[string]any{
		"document": sampleDocument(),
		"template": "executive",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRenderLaTeX_ByStoredID(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, "POST", "/resumes", sampleDocument())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, s, "POST", "/render/latex", map[string]any{
		"resumeId": created["id"],
		"template": "classic",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestRenderLaTeX_BothInputsRejected(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/render/latex", map[string]any{
		"resumeId": uuid.NewString(),
		"document": sampleDocument(),
		"template": "modern",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mutually exclusive")
}

func TestRenderPDF(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/render/pdf", map[string]any{
		"document": sampleDocument(),
		"template": "tech",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestRenderPDF_CacheServesRepeat(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"document": sampleDocument(), "template": "modern"}

	first := doJSON(t, s, "POST", "/render/pdf", body)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, s, "POST", "/render/pdf", body)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestTailor_WithText(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/tailor", map[string]any{
		"document":    sampleDocument(),
		"postingText": "Go Go Kubernetes",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var report struct {
		Matched []struct{ Term string }
		Missing []struct{ Term string }
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Matched, 1)
	assert.Equal(t, "go", report.Matched[0].Term)
	require.Len(t, report.Missing, 1)
	assert.Equal(t, "kubernetes", report.Missing[0].Term)
}

func TestTailor_RequiresPosting(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/tailor", map[string]any{
		"document": sampleDocument(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTailor_MutuallyExclusivePosting(t *testing.T) {
	rec := doJSON(t, newTestServer(t), "POST", "/tailor", map[string]any{
		"document":    sampleDocument(),
		"postingText": "Go",
		"postingUrl":  "https://example.com/job",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPStatus_Default(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}
