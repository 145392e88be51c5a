package dataset

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	amperrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/neilotoole/slogt"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const inventory = `Item_ID,Item_Name,Purchase_Price,Quantity
1,Towel,12.5,40
2,Soap,3,200
3,Pillow,n/a,15
4,Lamp,45.25,7
5,Kettle,-8,2
`

var wantPrices = []float64{12.5, 3, 45.25, -8}

func compressors() map[string]func(io.Writer) io.WriteCloser {
	return map[string]func(io.Writer) io.WriteCloser{
		".csv": func(w io.Writer) io.WriteCloser { return nopWriteCloser{w} },
		".csv.gz": func(w io.Writer) io.WriteCloser {
			return gzip.NewWriter(w)
		},
		".csv.zst": func(w io.Writer) io.WriteCloser {
			enc, err := zstd.NewWriter(w)
			if err != nil {
				panic(err)
			}

			return enc
		},
		".csv.lz4": func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) },
		".csv.br":  func(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) },
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func writeFile(t *testing.T, name string, content []byte, wrap func(io.Writer) io.WriteCloser) string {
	t.Helper()

	var buf bytes.Buffer

	w := wrap(&buf)
	_, err := w.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	return path
}

func TestLoadColumnCompressed(t *testing.T) {
	t.Parallel()

	for ext, wrap := range compressors() {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "inventory"+ext, []byte(inventory), wrap)

			values, err := LoadColumn(t.Context(), path, "Purchase_Price", WithLogger(slogt.New(t)))
			require.NoError(t, err)
			assert.Equal(t, wantPrices, values)
		})
	}
}

func TestHeaders(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "inventory.csv.gz", []byte(inventory), compressors()[".csv.gz"])

	headers, err := Headers(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Item_ID", "Item_Name", "Purchase_Price", "Quantity"}, headers)
}

func TestMissingColumn(t *testing.T) {
	t.Parallel()

	_, err := ReadColumn(t.Context(), strings.NewReader(inventory), "Price", WithLogger(slogt.New(t)))
	require.ErrorIs(t, err, amperrors.ErrColumnNotFound)

	keys := make([]string, 0)
	for _, a := range logger.Attrs(err) {
		keys = append(keys, a.Key)
	}

	assert.Contains(t, keys, "column")
	assert.Contains(t, keys, "headers")
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ReadColumn(t.Context(), strings.NewReader(""), "Price")
	require.ErrorIs(t, err, amperrors.ErrEmptyDataset)
}

func TestMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadColumn(t.Context(), filepath.Join(t.TempDir(), "absent.csv"), "x")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	data := "a;b\n1;x\n2;y\n3;z\n"

	values, err := ReadColumn(t.Context(), strings.NewReader(data), "a",
		WithDelimiter(';'), WithLimit(2), WithLogger(slogt.New(t)))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, values)
}

func TestShortRowsAndQuotes(t *testing.T) {
	t.Parallel()

	data := "name,price\n\"Lamp, large\",10\nshort\n\"Desk\", 7.5 \n"

	values, err := ReadColumn(t.Context(), strings.NewReader(data), "price", WithLogger(slogt.New(t)))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 7.5}, values)
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	var sb strings.Builder

	sb.WriteString("v\n")

	for range 3 * ctxCheckInterval {
		sb.WriteString("1\n")
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := ReadColumn(ctx, strings.NewReader(sb.String()), "v", WithLogger(slogt.New(t)))
	require.ErrorIs(t, err, context.Canceled)
}

func TestByteOrderMarkIsStripped(t *testing.T) {
	t.Parallel()

	data := "\xef\xbb\xbfprice\n4\n"

	values, err := ReadColumn(t.Context(), strings.NewReader(data), "price", WithLogger(slogt.New(t)))
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, values)
}

func TestLatin1Input(t *testing.T) {
	t.Parallel()

	var sb strings.Builder

	sb.WriteString("Désignation,Préço\n")

	for range 40 {
		sb.WriteString("Café crème élégant à la française,2\n")
		sb.WriteString("Thé glacé très sucré pour été,3\n")
	}

	encoded, err := charmap.ISO8859_1.NewEncoder().String(sb.String())
	require.NoError(t, err)

	values, err := ReadColumn(t.Context(), strings.NewReader(encoded), "Préço", WithLogger(slogt.New(t)))
	require.NoError(t, err)
	assert.Len(t, values, 80)
}

func TestParseCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cell string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{" -7 ", -7, true},
		{"1.5", 1.5, true},
		{"3000000000", 3e9, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseCell(tt.cell)
		assert.Equal(t, tt.ok, ok, tt.cell)
		assert.InDelta(t, tt.want, got, 0, tt.cell)
	}
}

func TestCompressionFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Gzip, CompressionFor("a.csv.GZ"))
	assert.Equal(t, Zstd, CompressionFor("a.zst"))
	assert.Equal(t, LZ4, CompressionFor("a.lz4"))
	assert.Equal(t, Brotli, CompressionFor("a.br"))
	assert.Equal(t, None, CompressionFor("a.csv"))

	_, err := Decompress(strings.NewReader(""), Compression("bzip2"))
	require.Error(t, err)
}

func TestConversions(t *testing.T) {
	t.Parallel()

	values := []float64{12.5, -3, 4e10}

	assert.Equal(t, []sortable.Float64{12.5, -3, 4e10}, Float64s(values))
	assert.Equal(t, []sortable.Int32{12, -3, 2147483647}, Int32s(values))
	assert.Equal(t, []sortable.String{"12.5", "-3", "40000000000"}, Strings(values))
}
