package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotImage      = errors.New("file is not an image")
	ErrPhotoTooLarge = errors.New("photo exceeds the size limit")
	ErrEmptyPhoto    = errors.New("photo is empty")
)

// PhotoEncoder turns uploads into data URLs that are stored inline in a log
type PhotoEncoder struct {
	MaxBytes int64
}

func NewPhotoEncoder(maxBytes int64) *PhotoEncoder {
	return &PhotoEncoder{MaxBytes: maxBytes}
}

// Encode reads one uploaded file and returns "data:<mime>;base64,<payload>".
// The content type comes from the bytes, not from the client.
func (e *PhotoEncoder) Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, e.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	return e.encodeBytes(data)
}

// EncodeDataURL validates a client-side encoded data URL and re-encodes it
// with the detected content type.
func (e *PhotoEncoder) EncodeDataURL(dataURL string) (string, error) {
	meta, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(meta, "data:") || !strings.HasSuffix(meta, ";base64") {
		return "", fmt.Errorf("%w: malformed data URL", ErrNotImage)
	}
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > e.MaxBytes+2 {
		return "", ErrPhotoTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	return e.encodeBytes(data)
}

func (e *PhotoEncoder) encodeBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPhoto
	}
	if int64(len(data)) > e.MaxBytes {
		return "", ErrPhotoTooLarge
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mtype.String())
	}

	var b bytes.Buffer
	b.Grow(len("data:;base64,") + len(mtype.String()) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mimeBase(mtype.String()))
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String(), nil
}

// mimeBase drops parameters such as "; charset=..."
func mimeBase(m string) string {
	base, _, _ := strings.Cut(m, ";")
	return strings.TrimSpace(base)
}
