package app

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"

	similarity "github.com/VersusProject/similarity-3d"
)

// none marks a missing value or error in a results row.
const none = "None"

// resultWriter appends tab-separated result rows.
type resultWriter struct {
	w      *csv.Writer
	closer io.Closer
}

// openResults opens path for appending, or stdout for "-".
func openResults(path string) (*resultWriter, error) {
	if path == "-" {
		return newResultWriter(os.Stdout, nil), nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening results %s", path)
	}
	return newResultWriter(f, f), nil
}

func newResultWriter(w io.Writer, closer io.Closer) *resultWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &resultWriter{w: cw, closer: closer}
}

// Write appends the row for one measure on one pair.
func (rw *resultWriter) Write(f1, f2 string, r similarity.Result) error {
	if err := rw.w.Write(formatRow(f1, f2, r)); err != nil {
		return errors.Wrap(err, "writing result")
	}
	return nil
}

// Close flushes buffered rows and closes the underlying file.
func (rw *resultWriter) Close() error {
	rw.w.Flush()
	err := rw.w.Error()
	if rw.closer != nil {
		if cerr := rw.closer.Close(); err == nil {
			err = cerr
		}
	}
	return errors.Wrap(err, "closing results")
}

// formatRow renders file1, file2, measure, value, elapsed, None for a
// success and file1, file2, measure, None, error for a failure.
func formatRow(f1, f2 string, r similarity.Result) []string {
	if r.Err != nil {
		return []string{f1, f2, r.Measure, none, r.Err.Error()}
	}
	return []string{
		f1, f2, r.Measure,
		strconv.FormatFloat(r.Value, 'g', -1, 64),
		r.Elapsed.String(),
		none,
	}
}
