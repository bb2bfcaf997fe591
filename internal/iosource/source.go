// Package iosource reads weapons documents from a local file, an
// http(s) URL or an S3 object. Without a location the built-in sample
// document is used.
package iosource

import (
	"context"
	_ "embed"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/document"
)

//go:embed data/weapons.json
var sampleDocument []byte

// SampleLocation is reported as location of the built-in document.
const SampleLocation = "builtin:weapons.json"

// Source is a fetched document before parsing.
type Source struct {
	Location string
	Format   document.Format
	Data     []byte
}

// Fetch reads the document at location. The format comes from
// cfg.Source.Format when it is set, otherwise from the file extension.
// Remote documents are also copied to the cache directory when
// cfg.HomeDir is set.
func Fetch(
	ctx context.Context,
	cfg *config.Config,
	location string,
) (*Source, error) {
	var data []byte
	var err error
	var keep bool

	loc := strings.TrimSpace(location)
	switch {
	case loc == "":
		loc = SampleLocation
		data = sampleDocument
	case isURL(loc, "http", "https"):
		data, err = fetchHTTP(ctx, loc)
		keep = true
	case isURL(loc, "s3"):
		data, err = fetchS3(ctx, &cfg.S3, loc)
		keep = true
	default:
		data, err = fetchFile(loc)
	}
	if err != nil {
		return nil, err
	}
	if keep {
		keepCopy(cfg.HomeDir, loc, data)
	}

	res := &Source{
		Location: loc,
		Format:   format(cfg.Source.Format, loc),
		Data:     data,
	}
	slog.Info("Document fetched",
		"location", res.Location,
		"format", res.Format.String(),
		"bytes", len(res.Data),
	)
	return res, nil
}

// Parse converts fetched data into a document.
func (s *Source) Parse() (*document.Document, error) {
	return document.Parse(s.Data, s.Format)
}

func format(configured, loc string) document.Format {
	if configured != "" {
		return document.NewFormat(configured)
	}
	if u, err := url.Parse(loc); err == nil && u.Scheme != "" {
		return document.FormatFromPath(u.Path)
	}
	return document.FormatFromPath(loc)
}

// keepCopy saves a remote document to the cache directory, so the
// last imported version can be inspected later. Failures are only
// logged.
func keepCopy(homeDir, loc string, data []byte) {
	if homeDir == "" {
		return
	}

	name := "document"
	if u, err := url.Parse(loc); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" {
			name = base
		}
	}

	cachePath := filepath.Join(config.CacheDir(homeDir), name)
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		slog.Warn("Cannot cache document", "path", cachePath, "error", err)
		return
	}
	slog.Debug("Document cached", "path", cachePath)
}

func isURL(loc string, schemes ...string) bool {
	for _, v := range schemes {
		if strings.HasPrefix(strings.ToLower(loc), v+"://") {
			return true
		}
	}
	return false
}

func fetchFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, LocationError(path, err)
	}
	return data, nil
}

func fetchHTTP(ctx context.Context, loc string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, LocationError(loc, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, FetchError(loc, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HTTPStatusError(loc, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, FetchError(loc, err)
	}
	return data, nil
}
