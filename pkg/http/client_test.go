package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadResume(t *testing.T) {
	var gotName, gotFile, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}

		gotName = r.FormValue("name")
		f, hdr, err := r.FormFile("resume")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		gotFile = string(data)
		gotFilename = hdr.Filename
		io.WriteString(w, "Resume uploaded!")
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 5*time.Second)
	err := c.UploadResume(context.Background(), "Ada", "ada.pdf", strings.NewReader("%PDF-1.4 ada"))
	require.NoError(t, err)

	assert.Equal(t, "Ada", gotName)
	assert.Equal(t, "%PDF-1.4 ada", gotFile)
	assert.Equal(t, "ada.pdf", gotFilename)
}

func TestUploadResume_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Upload failed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	err := c.UploadResume(context.Background(), "", "bad.pdf", strings.NewReader("junk"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.pdf")
	assert.Contains(t, err.Error(), "Upload failed")
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		io.WriteString(w, `{"status":"healthy"}`)
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, 5*time.Second).Get(context.Background(), "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
