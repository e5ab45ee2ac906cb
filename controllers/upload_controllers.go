package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kitchpad/kitchpad/utils"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type UploadController struct {
	UploadDir string
	BaseURL   string
}

func NewUploadController(uploadDir, baseURL string) *UploadController {
	return &UploadController{UploadDir: uploadDir, BaseURL: baseURL}
}

// UploadFile -> store one image and return its public URL as
// {"file_url": ...}.
func (uc *UploadController) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no file provided"))
		return
	}
	if file.Filename == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no file selected"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("file type not allowed"))
		return
	}

	if err := os.MkdirAll(uc.UploadDir, 0755); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error creating upload directory"))
		return
	}

	filename := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uc.UploadDir, filename)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving file"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file_url": fmt.Sprintf("%s/uploads/%s", uc.BaseURL, filename),
	})
}
