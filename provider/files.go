package provider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/poiesic/searchit/core"
)

const previewLength = 100

// expandScope resolves every scope entry to a list of regular file paths.
// Directories contribute their immediate regular-file children, filtered by
// the extension allow-list; explicitly named files are always included.
func expandScope(ctx context.Context, searchPaths, extensions []string) ([]string, error) {
	var files []string

	for _, scopePath := range searchPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(scopePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", core.ErrInvalidSearchPath, scopePath)
			}
			if os.IsPermission(err) {
				return nil, fmt.Errorf("%w: %s", core.ErrFileAccessDenied, scopePath)
			}
			return nil, fmt.Errorf("%w: stat %s: %v", core.ErrInternal, scopePath, err)
		}

		if !info.IsDir() {
			abs, err := filepath.Abs(scopePath)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", core.ErrInternal, err)
			}
			files = append(files, abs)
			continue
		}

		entries, err := os.ReadDir(scopePath)
		if err != nil {
			if os.IsPermission(err) {
				return nil, fmt.Errorf("%w: %s", core.ErrFileAccessDenied, scopePath)
			}
			return nil, fmt.Errorf("%w: read dir %s: %v", core.ErrInternal, scopePath, err)
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			if !extensionAllowed(entry.Name(), extensions) {
				continue
			}
			abs, err := filepath.Abs(filepath.Join(scopePath, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", core.ErrInternal, err)
			}
			files = append(files, abs)
		}
	}

	return files, nil
}

// extensionAllowed reports whether the file name passes the allow-list.
// An empty list allows everything. Extensions are compared without the dot.
func extensionAllowed(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return slices.Contains(extensions, ext)
}

// FileNameProvider produces one item per file with the base name as payload.
type FileNameProvider struct{}

// Verify interface compliance
var _ Provider = (*FileNameProvider)(nil)

// NewFileNameProvider creates a provider over file names.
func NewFileNameProvider() *FileNameProvider {
	return &FileNameProvider{}
}

// FetchItems lists the scope and converts each file name into an item.
// An empty scope defaults to the current directory.
func (p *FileNameProvider) FetchItems(ctx context.Context, opts *core.Options) ([]core.Item, error) {
	searchPaths := opts.SearchPaths
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}

	files, err := expandScope(ctx, searchPaths, opts.FileExtensions)
	if err != nil {
		return nil, err
	}

	items := make([]core.Item, 0, len(files))
	for _, path := range files {
		name := filepath.Base(path)
		items = append(items, core.Item{
			ID:   core.IDFromLocator(path),
			Data: name,
			Path: path,
			Metadata: map[string]string{
				"fileExtension": strings.TrimPrefix(filepath.Ext(name), "."),
			},
		})
	}

	return items, nil
}

// FileContentProvider produces one item per file with the decoded body as
// payload.
type FileContentProvider struct{}

// Verify interface compliance
var _ Provider = (*FileContentProvider)(nil)

// NewFileContentProvider creates a provider over file contents.
func NewFileContentProvider() *FileContentProvider {
	return &FileContentProvider{}
}

// FetchItems reads every file in scope and converts its body into an item.
// Empty files carry no searchable payload and are skipped.
func (p *FileContentProvider) FetchItems(ctx context.Context, opts *core.Options) ([]core.Item, error) {
	if len(opts.SearchPaths) == 0 {
		return nil, core.ErrSearchPathUnavailable
	}

	files, err := expandScope(ctx, opts.SearchPaths, opts.FileExtensions)
	if err != nil {
		return nil, err
	}

	items := make([]core.Item, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := os.ReadFile(path)
		if err != nil {
			if os.IsPermission(err) || errors.Is(err, fs.ErrPermission) {
				return nil, fmt.Errorf("%w: %s", core.ErrFileAccessDenied, path)
			}
			return nil, fmt.Errorf("%w: read %s: %v", core.ErrInternal, path, err)
		}
		if len(body) == 0 {
			continue
		}

		data := string(body)
		items = append(items, core.Item{
			ID:   core.IDFromLocator(path),
			Data: data,
			Path: path,
			Metadata: map[string]string{
				"fileExtension": strings.TrimPrefix(filepath.Ext(path), "."),
				"lineCount":     strconv.Itoa(strings.Count(data, "\n") + 1),
				"preview":       preview(data),
			},
		})
	}

	return items, nil
}

// preview returns the leading slice of the payload used in result metadata.
// Clips on a rune boundary so the metadata value stays valid UTF-8.
func preview(data string) string {
	if len(data) <= previewLength {
		return data
	}
	runes := []rune(data)
	if len(runes) <= previewLength {
		return data
	}
	return string(runes[:previewLength])
}
