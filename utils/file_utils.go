package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Base directory for storing uploaded files
	uploadBaseDir = "public/uploads"
	// Base URL for serving files
	baseURL = "/uploads"
	// Maximum file size (10MB)
	maxFileSize = 10 * 1024 * 1024
	// Images wider than this are downscaled before storage
	maxImageWidth = 1920
)

var (
	allowedImageExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".svg":  true,
		".webp": true,
	}
	filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// cleanFilename strips path components and dangerous characters.
func cleanFilename(filename string) string {
	return filenameSanitizer.ReplaceAllString(filepath.Base(filename), "")
}

// ValidateImageType checks the file extension against the allow list.
func ValidateImageType(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("unsupported image format. Allowed formats: jpg, jpeg, png, gif, svg, webp")
	}
	return nil
}

// InitializeStorage creates the uploads directory.
func InitializeStorage() error {
	if err := os.MkdirAll(uploadBaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create uploads directory: %v", err)
	}
	return nil
}

// SaveUpload stores a multipart image under the uploads directory and
// returns the public URL path. Files are named
// "<unix-millis>-<original name>"; oversized raster images are
// downscaled first.
func SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxFileSize {
		return "", fmt.Errorf("file too large. Maximum size is %d bytes", maxFileSize)
	}

	cleanName := cleanFilename(fileHeader.Filename)
	if err := ValidateImageType(cleanName); err != nil {
		return "", err
	}
	if strings.TrimSuffix(cleanName, filepath.Ext(cleanName)) == "" {
		cleanName = uuid.NewString() + filepath.Ext(cleanName)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %v", err)
	}
	if len(data) > maxFileSize {
		return "", fmt.Errorf("file too large. Maximum size is %d bytes", maxFileSize)
	}

	data = normalizeImage(data, cleanName)

	if err := InitializeStorage(); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), cleanName)
	fullPath := filepath.Join(uploadBaseDir, filename)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %v", err)
	}

	return fmt.Sprintf("%s/%s", baseURL, filename), nil
}

// normalizeImage downscales oversized jpeg/png uploads. Formats the
// decoder cannot handle (svg, webp, animated gif) pass through as-is.
func normalizeImage(data []byte, filename string) []byte {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return data
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}
	if img.Bounds().Dx() <= maxImageWidth {
		return data
	}

	resized := imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)

	format := imaging.JPEG
	if ext == ".png" {
		format = imaging.PNG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return data
	}
	return buf.Bytes()
}
