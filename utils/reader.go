package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/cheggaaa/pb/v3"
	"github.com/google/brotli/go/cbrotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) push(f func() error) {
	rc.closers = append(rc.closers, f)
}

// Close runs the closers last-in first-out and reports the first error.
func (rc *readCloser) Close() error {
	var first error
	for i := len(rc.closers) - 1; i >= 0; i-- {
		if err := rc.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	rc.closers = nil
	return first
}

// OpenReader opens fn and decompresses it by suffix: *.zst, *.br, *.gz
// (bgzf framing is detected from the header) or plain text otherwise.
// With progress set a byte progress bar of the raw file is drawn on stderr.
func OpenReader(fn string, numCPU int, progress bool) (io.ReadCloser, error) {
	fp, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	rc := &readCloser{Reader: fp}
	rc.push(fp.Close)

	var raw io.Reader = fp
	if progress {
		if fi, err := fp.Stat(); err == nil {
			bar := pb.Full.Start64(fi.Size())
			bar.Set(pb.Bytes, true)
			raw = bar.NewProxyReader(fp)
			rc.push(func() error {
				bar.Finish()
				return nil
			})
		}
	}

	r, closer, err := Decompress(raw, fn, numCPU)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("open %s: %w", fn, err)
	}
	rc.Reader = r
	if closer != nil {
		rc.push(closer)
	}
	return rc, nil
}

// Decompress wraps r with the decoder chosen by the suffix of fn. The
// returned closer releases the decoder only, r is left open.
func Decompress(r io.Reader, fn string, numCPU int) (io.Reader, func() error, error) {
	if numCPU < 1 {
		numCPU = 1
	}
	switch {
	case strings.HasSuffix(fn, ".zst"):
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, err
		}
		return zr, func() error {
			zr.Close()
			return nil
		}, nil
	case strings.HasSuffix(fn, ".br"):
		br := cbrotli.NewReader(r)
		return br, br.Close, nil
	case strings.HasSuffix(fn, ".gz"), strings.HasSuffix(fn, ".bgz"):
		buffp := bufio.NewReader(r)
		hdr, _ := buffp.Peek(18)
		if IsBGZF(hdr) {
			bz, err := bgzf.NewReader(buffp, numCPU)
			if err != nil {
				return nil, nil, err
			}
			return bz, bz.Close, nil
		}
		gz, err := gzip.NewReader(buffp)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz.Close, nil
	}
	return r, nil, nil
}

// IsBGZF reports whether hdr starts a gzip member carrying the BGZF 'BC'
// extra subfield.
func IsBGZF(hdr []byte) bool {
	if len(hdr) < 16 {
		return false
	}
	return hdr[0] == 0x1f && hdr[1] == 0x8b && hdr[2] == 8 && hdr[3]&4 != 0 &&
		hdr[12] == 'B' && hdr[13] == 'C'
}
