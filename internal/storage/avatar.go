// Package storage keeps uploaded profile images.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	"github.com/fazla-cloud/thunder-agency-platform/internal/utils"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrAvatarTooLarge   = errors.New("avatar exceeds the maximum size")
	ErrAvatarEmpty      = errors.New("avatar is empty")
	ErrUnsupportedImage = errors.New("avatar must be a PNG, JPEG or WebP image")
)

var allowedTypes = []string{"image/png", "image/jpeg", "image/webp"}

// AvatarStore saves an avatar and returns its public URL.
type AvatarStore interface {
	Save(profileID string, r io.Reader) (string, error)
}

// LocalAvatarStore writes avatars to a directory served under URLPrefix.
type LocalAvatarStore struct {
	dir       string
	urlPrefix string
}

// NewLocalAvatarStore creates a store rooted at dir.
func NewLocalAvatarStore(dir, urlPrefix string) *LocalAvatarStore {
	return &LocalAvatarStore{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// Dir is the directory avatars are written to.
func (s *LocalAvatarStore) Dir() string {
	return s.dir
}

// Save sniffs the image type from its content, not the upload's declared
// type, and writes it under a fresh random name.
func (s *LocalAvatarStore) Save(profileID string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, constants.MaxAvatarBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read avatar: %w", err)
	}
	if len(data) == 0 {
		return "", ErrAvatarEmpty
	}
	if len(data) > constants.MaxAvatarBytes {
		return "", ErrAvatarTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		return "", ErrUnsupportedImage
	}

	token, err := utils.RandomToken(8)
	if err != nil {
		return "", err
	}
	name := profileID + "-" + token + mtype.Extension()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create avatar directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write avatar: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}
