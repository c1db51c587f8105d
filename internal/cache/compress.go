package cache

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"
)

// Compression constants. A response is only worth compressing when it is
// long enough and actually shrinks: a "compressed" payload that is not
// meaningfully smaller than the original must never be persisted.
const (
	// CompressionThreshold is the response length above which compression is
	// attempted.
	CompressionThreshold = 500

	// CompressionRatioThreshold is the maximum encoded/original size ratio
	// for the compressed form to be kept.
	CompressionRatioThreshold = 0.7
)

// compressResponse gzip-compresses the response and base64-encodes the
// result. It returns the encoded payload and true only when the encoded form
// beats the ratio threshold; otherwise the original string is returned with
// false. Compression failures fall back to the uncompressed value.
func compressResponse(response string) (string, bool) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(response)); err != nil {
		_ = zw.Close()
		return response, false
	}
	if err := zw.Close(); err != nil {
		return response, false
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	ratio := float64(len(encoded)) / float64(len(response))
	if ratio >= CompressionRatioThreshold {
		return response, false
	}
	return encoded, true
}

// decompressResponse reverses compressResponse: base64 decode, then gunzip.
// The result must be byte-identical to the original string.
func decompressResponse(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode compressed response: %w", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("open compressed response: %w", err)
	}
	defer func() { _ = zr.Close() }()

	data, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("decompress response: %w", err)
	}
	return string(data), nil
}
