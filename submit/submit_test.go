package submit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

func TestDisabledSkipsEveryRow(t *testing.T) {
	res := Disabled{}.Submit(context.Background(), invoice.Record{"vendor": "Acme"})
	assert.Equal(t, invoice.SubmissionSkipped, res.Status)
	assert.Equal(t, "", res.Detail)
}

func TestClientSubmit(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantStatus string
		wantDetail string
	}{
		{"ok", http.StatusOK, invoice.SubmissionSuccess, ""},
		{"created still succeeds", http.StatusCreated, invoice.SubmissionSuccess, ""},
		{"server error", http.StatusInternalServerError, invoice.SubmissionFailed, "status_500"},
		{"not found", http.StatusNotFound, invoice.SubmissionFailed, "status_404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			}))
			defer srv.Close()

			res := NewClient(srv.URL).Submit(context.Background(), invoice.Record{"vendor": "Acme"})
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantDetail, res.Detail)
		})
	}
}

func TestClientSubmitPostsRowAsJSON(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotBody        map[string]any
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer srv.Close()

	row := invoice.Record{
		"vendor": "Acme Corp",
		"status": invoice.StatusApproved,
		"issues": "",
	}
	res := NewClient(srv.URL).Submit(context.Background(), row)

	assert.Equal(t, invoice.SubmissionSuccess, res.Status)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Acme Corp", gotBody["vendor"].(string))
	assert.Equal(t, "APPROVED", gotBody["status"].(string))
}

func TestClientSubmitTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	res := NewClient(srv.URL).Submit(context.Background(), invoice.Record{"vendor": "Acme"})
	assert.Equal(t, invoice.SubmissionFailed, res.Status)
	assert.NotEqual(t, "", res.Detail)
}
