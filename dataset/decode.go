package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffSize is how much of the input is inspected for charset detection.
const sniffSize = 4096

// Compression identifies a compressed container format.
type Compression string

const (
	None   Compression = ""
	Gzip   Compression = "gzip"
	Zstd   Compression = "zstd"
	LZ4    Compression = "lz4"
	Brotli Compression = "brotli"
)

// CompressionFor guesses the compression of a file from its extension.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	case ".br":
		return Brotli
	default:
		return None
	}
}

type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var errs []error

	for _, c := range m.closers {
		errs = append(errs, c())
	}

	return errors.Join(errs...)
}

// Decompress wraps r in a reader for the given compression. Closing the
// result releases the decoder; it does not close r.
func Decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}

		return zr, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}

		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Brotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression %q", c)
	}
}

// Open opens path, decompressing it according to its extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, err
	}

	rc, err := Decompress(f, CompressionFor(path))
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &multiCloser{Reader: rc, closers: []func() error{rc.Close, f.Close}}, nil
}

// toUTF8 returns a reader producing UTF-8 text from r, along with the name of
// the charset it decided the input was in. Valid UTF-8 passes through with a
// leading byte order mark removed; anything else goes through chardet and is
// transcoded. If detection fails the bytes are passed through untouched.
func toUTF8(r io.Reader) (io.Reader, string) {
	br := bufio.NewReaderSize(r, sniffSize)

	// A short read or EOF just means a small file.
	head, _ := br.Peek(sniffSize)

	if validUTF8Prefix(head) {
		return transform.NewReader(br, unicode.BOMOverride(unicode.UTF8.NewDecoder())), "utf-8"
	}

	best, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return br, "utf-8"
	}

	decoded, err := charset.NewReaderLabel(best.Charset, br)
	if err != nil {
		return br, "utf-8"
	}

	return decoded, strings.ToLower(best.Charset)
}

// validUTF8Prefix reports whether b is valid UTF-8, ignoring a rune that may
// have been cut off at the end of the buffer.
func validUTF8Prefix(b []byte) bool {
	if utf8.Valid(b) {
		return true
	}

	for cut := 1; cut < utf8.UTFMax && cut < len(b); cut++ {
		if utf8.Valid(b[:len(b)-cut]) {
			return !utf8.FullRune(b[len(b)-cut:])
		}
	}

	return false
}
