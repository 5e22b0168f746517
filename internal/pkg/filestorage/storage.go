package filestorage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	URLPrefix       = "/api/uploads/"
	DefaultMaxBytes = 5 * 1024 * 1024

	fieldName = "image"
	sniffLen  = 512
)

var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("only image files are allowed")
	ErrNotUploadPath   = errors.New("not an upload path")
)

var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".gif":  {},
}

var allowedMIME = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
}

// Storage складывает загруженные картинки заказов в каталог на диске.
type Storage struct {
	dir      string
	maxBytes int64
	newID    func() string
}

func New(dir string, maxBytes int64) (*Storage, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %q: %w", dir, err)
	}
	return &Storage{
		dir:      dir,
		maxBytes: maxBytes,
		newID:    uuid.NewString,
	}, nil
}

func (s *Storage) MaxBytes() int64 {
	return s.maxBytes
}

// Save проверяет расширение и MIME тип, пишет файл под случайным именем
// и возвращает публичный путь вида /api/uploads/<name>.
func (s *Storage) Save(filename, contentType string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedType, ext)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	mimeType := mediaType(contentType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mediaType(http.DetectContentType(head))
	}
	if _, ok := allowedMIME[mimeType]; !ok {
		return "", fmt.Errorf("%w: content type %q", ErrUnsupportedType, mimeType)
	}

	name := fieldName + "-" + s.newID() + ext
	fullPath := filepath.Join(s.dir, name)

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	body := io.MultiReader(bytes.NewReader(head), r)
	written, err := io.Copy(f, io.LimitReader(body, s.maxBytes+1))
	closeErr := f.Close()

	switch {
	case err != nil:
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("write upload file: %w", err)
	case written > s.maxBytes:
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("%w: limit %d bytes", ErrFileTooLarge, s.maxBytes)
	case closeErr != nil:
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("close upload file: %w", closeErr)
	}

	return URLPrefix + name, nil
}

// Remove удаляет файл по пути, который вернул Save. Уже удаленный файл не ошибка.
func (s *Storage) Remove(path string) error {
	name, ok := strings.CutPrefix(path, URLPrefix)
	if !ok || name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return fmt.Errorf("%w: %q", ErrNotUploadPath, path)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// Handler раздает сохраненные файлы по URLPrefix.
func (s *Storage) Handler() http.Handler {
	return http.StripPrefix(URLPrefix, http.FileServer(noListing{http.Dir(s.dir)}))
}

func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// noListing запрещает листинг каталога.
type noListing struct {
	fs http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if stat.IsDir() {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
