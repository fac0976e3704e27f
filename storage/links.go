// Package storage reads template files from a remote or local store and
// memoizes them for the lifetime of the process.
package storage

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	fileIDPath   = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)
	folderIDPath = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)
	bareID       = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// FileIDFromLink extracts a file id from a share link
// ("https://drive.google.com/file/d/<id>/view", "...?id=<id>") or returns
// link itself when it already is a bare id. It returns "" when nothing
// id-shaped is found.
func FileIDFromLink(link string) string {
	link = strings.TrimSpace(link)
	if bareID.MatchString(link) {
		return link
	}
	if m := fileIDPath.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	if u, err := url.Parse(link); err == nil {
		if id := u.Query().Get("id"); bareID.MatchString(id) {
			return id
		}
	}
	return ""
}

// FolderIDFromURL extracts the folder id from a ".../folders/<id>" link.
func FolderIDFromURL(link string) string {
	if m := folderIDPath.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	return ""
}
