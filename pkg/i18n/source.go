package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// Source loads raw catalog data.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves messages from memory.
type MapSource map[string]map[string]any

func (s MapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	return s, nil
}

// FileSource reads a single JSON or YAML catalog file.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	parser, err := ParserFor(s.Path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return parser.Parse(ctx, content)
}

// FSSource reads every JSON and YAML file in Dir of FS, typically an
// embed.FS. Files are merged in directory order; later files win on
// conflicting keys.
type FSSource struct {
	FS  fs.FS
	Dir string
}

func (s FSSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if s.FS == nil {
		return nil, ErrNilSource
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}

	all := make(map[string]map[string]any)
	found := false
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}
		parser, err := ParserFor(entry.Name())
		if err != nil {
			continue
		}
		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(s.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToRead, err)
		}
		data, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, msgs := range data {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(msgs))
			}
			maps.Copy(all[lang], msgs)
		}
		found = true
	}
	if !found {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogFilesInFS, dir)
	}
	return all, nil
}
