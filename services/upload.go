package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"legalscholer_app_go/services/simulator"
)

const (
	MaxUploadSize     = 10 * 1024 * 1024 // 10MB
	MaxUploadNameSize = 255
)

var (
	ErrNoFile        = errors.New("no file provided")
	ErrFileTooLarge  = errors.New("file size exceeds maximum allowed size of 10MB")
	ErrInvalidUpload = errors.New("invalid upload metadata")
)

// FileRefFromHeader describes an uploaded part by its header only.
// The file content is never opened.
func FileRefFromHeader(fileHeader *multipart.FileHeader) (simulator.FileRef, error) {
	if fileHeader == nil {
		return simulator.FileRef{}, ErrNoFile
	}
	return newFileRef(fileHeader.Filename, fileHeader.Size)
}

// FileRefFromFields builds a reference from the name and size the browser
// reported for a picked or dropped file.
func FileRefFromFields(name, size string) (simulator.FileRef, error) {
	if strings.TrimSpace(name) == "" {
		return simulator.FileRef{}, ErrNoFile
	}
	n := int64(0)
	if size != "" {
		parsed, err := strconv.ParseInt(size, 10, 64)
		if err != nil {
			return simulator.FileRef{}, fmt.Errorf("%w: size %q", ErrInvalidUpload, size)
		}
		n = parsed
	}
	return newFileRef(name, n)
}

func newFileRef(name string, size int64) (simulator.FileRef, error) {
	if size < 0 {
		return simulator.FileRef{}, fmt.Errorf("%w: negative size", ErrInvalidUpload)
	}
	if size > MaxUploadSize {
		return simulator.FileRef{}, ErrFileTooLarge
	}

	name = cleanFileName(name)
	if name == "" {
		return simulator.FileRef{}, ErrNoFile
	}
	return simulator.FileRef{Name: name, Size: size}, nil
}

// cleanFileName keeps the base name as plain text of bounded length.
func cleanFileName(name string) string {
	// markup goes first, or the slash of a closing tag would split the name
	name = PlainText(name, 0)
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimSpace(filepath.Base(name))
	if name == "." || name == "/" {
		return ""
	}
	if utf8.RuneCountInString(name) > MaxUploadNameSize {
		ext := filepath.Ext(name)
		if utf8.RuneCountInString(ext) >= MaxUploadNameSize {
			ext = ""
		}
		runes := []rune(strings.TrimSuffix(name, ext))
		name = string(runes[:MaxUploadNameSize-utf8.RuneCountInString(ext)]) + ext
	}
	return name
}
