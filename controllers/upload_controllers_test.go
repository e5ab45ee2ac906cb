package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kitchpad/kitchpad/controllers"
)

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	req, err := http.NewRequest("POST", "/api/upload", &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadStoresFileAndReturnsURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	r := gin.New()
	r.POST("/api/upload", controllers.NewUploadController(dir, "http://localhost:8080").UploadFile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "menu.png", "png-bytes"))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["file_url"], "http://localhost:8080/uploads/")
	assert.True(t, strings.HasSuffix(resp["file_url"], "_menu.png"))

	stored := filepath.Base(resp["file_url"])
	data, err := os.ReadFile(filepath.Join(dir, stored))
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/upload", controllers.NewUploadController(t.TempDir(), "http://localhost:8080").UploadFile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "evil.sh", "#!/bin/sh"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "file type not allowed", resp["error"])
}

func TestUploadRequiresFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/upload", controllers.NewUploadController(t.TempDir(), "http://localhost:8080").UploadFile)

	req, err := http.NewRequest("POST", "/api/upload", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
