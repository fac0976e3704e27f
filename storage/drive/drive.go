// Package drive reads templates from Google Drive.
//
// A Store wraps one Drive service client. Build it once per process and pass
// it to whatever needs template access; it holds no per-request state.
package drive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/gaurav-prasanna/charsheet/storage"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// File is one entry of a folder listing.
type File struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
}

// Store reads files through the Drive v3 API.
type Store struct {
	srv *drivev3.Service
}

// New creates a read-only Store. Credentials come from opts, e.g.
// option.WithCredentialsJSON with a service-account key.
func New(ctx context.Context, opts ...option.ClientOption) (*Store, error) {
	opts = append([]option.ClientOption{option.WithScopes(drivev3.DriveReadonlyScope)}, opts...)
	srv, err := drivev3.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}
	return &Store{srv: srv}, nil
}

// NewFromServiceAccount creates a Store from a service-account JSON key.
func NewFromServiceAccount(ctx context.Context, credentialsJSON []byte) (*Store, error) {
	return New(ctx, option.WithCredentialsJSON(credentialsJSON))
}

// Template downloads the file body and returns it as text. id may be a bare
// file id or a share link.
func (s *Store) Template(ctx context.Context, id string) (string, error) {
	fileID, err := resolveID(id)
	if err != nil {
		return "", err
	}
	resp, err := s.srv.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return "", &core.StorageError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &core.StorageError{ID: id, Err: fmt.Errorf("reading body: %w", err)}
	}
	if !utf8.Valid(data) {
		return "", &core.StorageError{ID: id, Err: fmt.Errorf("file is not UTF-8 text")}
	}
	return string(data), nil
}

// Revision returns the file's version number, which Drive bumps on every
// content change.
func (s *Store) Revision(ctx context.Context, id string) (string, error) {
	fileID, err := resolveID(id)
	if err != nil {
		return "", err
	}
	f, err := s.srv.Files.Get(fileID).Fields("version").Context(ctx).Do()
	if err != nil {
		return "", &core.StorageError{ID: id, Err: err}
	}
	return strconv.FormatInt(f.Version, 10), nil
}

// ListFolder lists the non-trashed files and sub-folders of a folder.
func (s *Store) ListFolder(ctx context.Context, folderID string) ([]File, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	var files []File

	call := s.srv.Files.List().Q(query).Fields("nextPageToken", "files(id, name, mimeType)").Context(ctx)
	err := call.Pages(ctx, func(page *drivev3.FileList) error {
		for _, f := range page.Files {
			files = append(files, File{ID: f.Id, Name: f.Name, MimeType: f.MimeType})
		}
		return nil
	})
	if err != nil {
		return nil, &core.StorageError{ID: folderID, Err: err}
	}
	return files, nil
}

func resolveID(link string) (string, error) {
	id := storage.FileIDFromLink(link)
	if id == "" {
		return "", &core.StorageError{ID: link, Err: fmt.Errorf("not a file id or share link")}
	}
	return id, nil
}
