package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Calculator computes file checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	CalculateNormalized(content []byte) string
}

// Fingerprint identifies the content of one input file.
type Fingerprint struct {
	Path       string `json:"path"`
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
	Size       int    `json:"size"`
}

// SHA256 implements Calculator using SHA-256.
// SHA256 is a zero-size type and is safe for concurrent use.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(c.normalize(content)))
	return hex.EncodeToString(hash[:])
}

// Fingerprint computes both checksums of a file.
func (c SHA256) Fingerprint(path string, content []byte) Fingerprint {
	return Fingerprint{
		Path:       path,
		Raw:        c.CalculateRaw(content),
		Normalized: c.CalculateNormalized(content),
		Size:       len(content),
	}
}

func (c SHA256) normalize(content []byte) string {
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
