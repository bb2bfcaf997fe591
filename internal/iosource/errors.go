package iosource

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/weaponstats/wsdb/pkg/errcode"
)

// LocationError creates an error for a document location that cannot
// be read or understood.
func LocationError(loc string, err error) error {
	msg := `Cannot read weapons document <em>%s</em>

<em>How to fix:</em>
  1. Check that the file exists and is readable
  2. Use a path, an http(s):// URL or s3://bucket/key`

	return &gn.Error{
		Code: errcode.SourceLocationError,
		Msg:  msg,
		Vars: []any{loc},
		Err:  fmt.Errorf("read %s: %w", loc, err),
	}
}

// FetchError creates an error for failed downloads.
func FetchError(loc string, err error) error {
	msg := "Cannot download weapons document from <em>%s</em>"

	return &gn.Error{
		Code: errcode.SourceFetchError,
		Msg:  msg,
		Vars: []any{loc},
		Err:  fmt.Errorf("download %s: %w", loc, err),
	}
}

// HTTPStatusError creates an error for unexpected HTTP responses.
func HTTPStatusError(loc string, status int) error {
	msg := "Server returned status <em>%d</em> for <em>%s</em>"

	return &gn.Error{
		Code: errcode.SourceFetchError,
		Msg:  msg,
		Vars: []any{status, loc},
		Err:  fmt.Errorf("download %s: status %d", loc, status),
	}
}

// S3Error creates an error for failed S3 reads.
func S3Error(loc string, err error) error {
	msg := `Cannot read weapons document from <em>%s</em>

<em>Possible causes:</em>
  - Bucket or key does not exist
  - AWS credentials are missing or have no access
  - Wrong region or endpoint (see s3 section of config.yaml)`

	return &gn.Error{
		Code: errcode.SourceS3Error,
		Msg:  msg,
		Vars: []any{loc},
		Err:  fmt.Errorf("s3 get %s: %w", loc, err),
	}
}
