package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")

	for _, allowedType := range allowedTypes {
		if ext == allowedType {
			return true
		}
	}

	return false
}

func IsImageFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedImageTypes)
}

func GenerateUniqueFilename(originalFilename string) string {
	ext := GetFileExtension(originalFilename)
	timestamp := time.Now().Unix()
	randomStr := GenerateRandomString(8)

	return fmt.Sprintf("%d_%s%s", timestamp, randomStr, ext)
}

func GetContentType(filename string) string {
	ext := GetFileExtension(filename)

	contentTypes := map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
	}

	if contentType, exists := contentTypes[ext]; exists {
		return contentType
	}

	return "application/octet-stream"
}
