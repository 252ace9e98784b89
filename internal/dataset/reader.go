package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrNoData is returned when an input holds no records.
var ErrNoData = errors.New("no input data")

// sniffLen is how many bytes are inspected to detect compression.
const sniffLen = 3072

// Read parses one record per line. Trailing CR/LF is stripped and lines
// have no length limit. An input without lines returns ErrNoData.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	var records []Record

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			records = append(records, ParseRecord(strings.TrimRight(line, "\r\n")))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", len(records)+1, err)
		}
	}

	if len(records) == 0 {
		return nil, ErrNoData
	}
	return records, nil
}

// NewReader wraps r so gzip and zstd content is decompressed
// transparently. Anything else is passed through unchanged.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("sniff input: %w", err)
	}

	mtype := mimetype.Detect(head)
	switch {
	case mtype.Is("application/gzip"):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return gz, nil
	case mtype.Is("application/zstd"):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return dec.IOReadCloser(), nil
	default:
		return io.NopCloser(br), nil
	}
}

// Open opens a dataset file, decompressing it when needed.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	rc, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &fileReader{ReadCloser: rc, file: file}, nil
}

type fileReader struct {
	io.ReadCloser
	file *os.File
}

func (f *fileReader) Close() error {
	err := f.ReadCloser.Close()
	if cerr := f.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadFile reads all records from path, or from stdin when path is empty.
func ReadFile(path string, stdin io.Reader) ([]Record, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if path == "" {
		rc, err = NewReader(stdin)
	} else {
		rc, err = Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Read(rc)
}
