package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxFileSize = 10 * 1024 * 1024 // 10MB

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// UploadFile handles multipart uploads into the local upload directory and
// returns the path the file is served from.
func (ctrl *Controller) UploadFile(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded. Please select an image file."})
		return
	}

	if file.Size > maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File too large. Maximum is 10MB (file size: %.1fMB)", float64(file.Size)/(1024*1024)),
		})
		return
	}

	parts := strings.Split(file.Filename, ".")
	if len(parts) < 2 || !allowedExtensions[strings.ToLower(parts[len(parts)-1])] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File format not supported. Allowed formats: jpg, jpeg, png, gif, webp"})
		return
	}

	// Unique prefix so concurrent uploads of the same filename never clash.
	uniqueFilename := uuid.New().String() + "_" + filepath.Base(file.Filename)
	dest := filepath.Join(ctrl.Cfg.UploadDir, uniqueFilename)

	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving file: " + err.Error()})
		return
	}

	ctrl.Log.Infow("file uploaded", "filename", uniqueFilename, "size", file.Size)
	c.JSON(http.StatusCreated, gin.H{
		"message":   "File uploaded successfully",
		"filename":  uniqueFilename,
		"image_url": "/api/files/" + uniqueFilename,
	})
}

// ServeFile handles GET /api/files/:filename from the local upload directory.
func (ctrl *Controller) ServeFile(c *gin.Context) {
	filename := c.Param("filename")
	// Reject anything that is not a bare filename.
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	path := filepath.Join(ctrl.Cfg.UploadDir, filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.File(path)
}
