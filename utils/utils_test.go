package utils

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/google/brotli/go/cbrotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = "read1\t1000\t0\t1000\t+\t<u28<u25>u27\n" +
	"read2\t1000\t0\t1000\t+\t<u27>u25>u28\n"

func writeCompressed(t *testing.T, fn string, wrap func(io.Writer) io.WriteCloser) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fn)
	fp, err := os.Create(path)
	require.NoError(t, err)
	w := wrap(fp)
	_, err = io.WriteString(w, payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, fp.Close())
	return path
}

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, err := OpenReader(path, 2, false)
	require.NoError(t, err)
	b, err := ioutil.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	return string(b)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestOpenReader(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		wrap func(io.Writer) io.WriteCloser
	}{
		{"plain", "aln.gaf", func(w io.Writer) io.WriteCloser { return nopWriteCloser{w} }},
		{"gzip", "aln.gaf.gz", func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) }},
		{"bgzf", "aln.gaf.gz", func(w io.Writer) io.WriteCloser { return bgzf.NewWriter(w, 1) }},
		{"zstd", "aln.gaf.zst", func(w io.Writer) io.WriteCloser {
			zw, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
			require.NoError(t, err)
			return zw
		}},
		{"brotli", "aln.gaf.br", func(w io.Writer) io.WriteCloser {
			return cbrotli.NewWriter(w, cbrotli.WriterOptions{Quality: 1})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCompressed(t, tt.fn, tt.wrap)
			assert.Equal(t, payload, readAll(t, path))
		})
	}
}

func TestOpenReader_Errors(t *testing.T) {
	_, err := OpenReader(filepath.Join(t.TempDir(), "missing.gaf"), 1, false)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "notgzip.gaf.gz")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
	_, err = OpenReader(path, 1, false)
	assert.Error(t, err)
}

func TestOpenReader_Progress(t *testing.T) {
	path := writeCompressed(t, "aln.gaf.gz", func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) })
	rc, err := OpenReader(path, 1, true)
	require.NoError(t, err)
	b, err := ioutil.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, string(b))
	assert.NoError(t, rc.Close())
}

func TestIsBGZF(t *testing.T) {
	var buf bytes.Buffer
	bw := bgzf.NewWriter(&buf, 1)
	_, err := bw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, bw.Close())
	assert.True(t, IsBGZF(buf.Bytes()))

	buf.Reset()
	gw := gzip.NewWriter(&buf)
	_, err = gw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	assert.False(t, IsBGZF(buf.Bytes()))

	assert.False(t, IsBGZF(nil))
}

func TestWarner(t *testing.T) {
	w := Warner{Max: 2}
	for i := 0; i < 5; i++ {
		w.Warnf("line %d", i)
	}
	assert.Equal(t, 5, w.Count())
	assert.Equal(t, 3, w.Suppressed())

	var nw *Warner
	assert.Equal(t, 0, nw.Count())
}

func TestStartCPUProfile(t *testing.T) {
	stop, err := StartCPUProfile("")
	require.NoError(t, err)
	stop()

	fn := filepath.Join(t.TempDir(), "cpu.prof")
	stop, err = StartCPUProfile(fn)
	require.NoError(t, err)
	stop()
	_, err = os.Stat(fn)
	assert.NoError(t, err)
}

func Benchmark_IsBGZF(b *testing.B) {
	hdr := []byte{0x1f, 0x8b, 8, 4, 0, 0, 0, 0, 0, 0xff, 6, 0, 'B', 'C', 2, 0, 0x1b, 0}
	for i := 0; i < b.N; i++ {
		IsBGZF(hdr)
	}
}
