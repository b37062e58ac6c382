package app

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/VersusProject/similarity-3d/volume"
)

// sliceSeparator is the record that starts a new z-slice in a volume file.
const sliceSeparator = "---"

// volumeLoader decodes volume files, keeping the most recently used ones so
// that a file shared by many pairs is read once.
type volumeLoader struct {
	cache *lru.Cache[string, *volume.Volume]
}

func newVolumeLoader(size int) (*volumeLoader, error) {
	cache, err := lru.New[string, *volume.Volume](size)
	if err != nil {
		return nil, errors.Wrapf(err, "creating volume cache of size %d", size)
	}
	return &volumeLoader{cache: cache}, nil
}

// Load returns the decoded volume at path.
func (l *volumeLoader) Load(path string) (*volume.Volume, error) {
	if v, ok := l.cache.Get(path); ok {
		log.Debug().Str("file", path).Msg("volume cache hit")
		return v, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening volume %s", path)
	}
	defer f.Close()

	v, err := readVolume(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding volume %s", path)
	}
	l.cache.Add(path, v)
	return v, nil
}

// Pair loads both volumes of a pair.
func (l *volumeLoader) Pair(first, second string) (*volume.Volume, *volume.Volume, error) {
	a, err := l.Load(first)
	if err != nil {
		return nil, nil, err
	}
	b, err := l.Load(second)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// readVolume decodes a CSV volume. Each record is one row of a slice; a
// record holding only the separator closes the current slice.
func readVolume(r io.Reader) (*volume.Volume, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var (
		slices [][][]float64
		slice  [][]float64
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == sliceSeparator {
			if len(slice) > 0 {
				slices = append(slices, slice)
			}
			slice = nil
			continue
		}
		row := make([]float64, len(record))
		for i, field := range record {
			if row[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				line, _ := cr.FieldPos(i)
				return nil, errors.Wrapf(err, "line %d field %d", line, i+1)
			}
		}
		slice = append(slice, row)
	}
	if len(slice) > 0 {
		slices = append(slices, slice)
	}
	return volume.FromSlices(slices)
}
