// Package uploads отвечает за размещение загруженных картинок отзывов на диске.
//
// Имена файлов генерируются через uuid, чтобы исключить коллизии и
// попадание пользовательского ввода в путь. Store возвращает web-путь
// вида /uploads/<имя>, который записывается в отзыв.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix — префикс, под которым статика загрузок отдается наружу.
const URLPrefix = "/uploads"

// Store сохраняет файлы в каталоге dir.
type Store struct {
	dir string
}

// New создает каталог загрузок, если его нет, и возвращает Store.
func New(dir string) (*Store, error) {
	const op = "uploads.New"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{dir: dir}, nil
}

// Save записывает содержимое multipart-файла на диск и возвращает web-путь.
// Расширение берется из исходного имени, само имя — случайное.
func (s *Store) Save(file multipart.File, originalName string) (string, error) {
	const op = "uploads.Save"

	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = dst.Close()
	}()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return path.Join(URLPrefix, name), nil
}

// Remove удаляет ранее сохраненный файл по его web-пути.
// Используется для очистки, когда отзыв не удалось сохранить.
func (s *Store) Remove(webPath string) error {
	const op = "uploads.Remove"
	name := path.Base(webPath)
	if name == "." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Dir возвращает каталог, из которого отдается статика загрузок.
func (s *Store) Dir() string {
	return s.dir
}
