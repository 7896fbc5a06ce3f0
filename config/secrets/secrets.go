// Package secrets reads secret values, such as Docker secrets, for use in
// config files.
package secrets

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Dir is the directory secrets are read from.
var Dir = "/run/secrets"

// Prefix is the prefix of a string to indicate it should
// be substituted with the secret value. For example:
//
//	"!secret foo" -> /run/secrets/foo
const Prefix = "!secret "

// ErrInvalidName is returned for secret names that are not a single path element.
var ErrInvalidName = errors.New("invalid secret name")

// maxSize bounds how much of a secret file is read.
const maxSize = 4096

// CutPrefix is equivalent to [strings.CutPrefix](s, [Prefix])
func CutPrefix(s string) (secret string, ok bool) {
	secret, ok = strings.CutPrefix(s, Prefix)
	return strings.TrimSpace(secret), ok
}

// Read returns the value of the secret file <Dir>/<secret> with
// surrounding whitespace trimmed.
func Read(secret string) (string, error) {
	if secret == "" || secret != filepath.Base(secret) || secret == ".." {
		return "", ErrInvalidName
	}
	fd, err := unix.Open(filepath.Join(Dir, secret), unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return "", err
	}
	defer unix.Close(fd)

	var (
		buf [maxSize]byte
		n   int
	)
	for n < len(buf) {
		m, err := unix.Read(fd, buf[n:])
		if err != nil {
			return "", err
		}
		if m == 0 {
			break
		}
		n += m
	}
	return string(bytes.TrimSpace(buf[:n])), nil
}

// MustRead returns the value of the secret file <Dir>/<secret>.
// If there is an error reading the file then MustRead returns fallback.
func MustRead(secret, fallback string) string {
	s, err := Read(secret)
	if err != nil {
		return fallback
	}
	return s
}
