package app

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	similarity "github.com/VersusProject/similarity-3d"
)

const (
	modeInline   = "inline"
	modeAllPairs = "allpairs"
)

// compareOptions is the resolved configuration of one compare run.
type compareOptions struct {
	Files     []string
	Measures  []string
	Mode      string
	Results   string
	Bins      int
	Normalize bool
	CacheSize int
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [files...]",
		Short: "Compare volumes and append the results to a TSV file",
		Long: `Compare loads every listed volume and evaluates the measures on file pairs.

In inline mode the first file is compared with every file, itself included.
In allpairs mode every ordered pair of files is compared.

Volume files are CSV: each record holds one row of voxel values and a
record consisting of "---" starts the next slice.`,
		RunE: runCompare,
	}

	flags := cmd.Flags()
	flags.StringSlice("files", nil, "Volume files to compare")
	flags.String("file-list", "", "File listing one volume path per line")
	flags.StringSlice("measures", nil, "Measures to evaluate (default: all)")
	flags.String("measure-list", "", "File listing one measure name per line")
	flags.String("mode", modeInline, "Pairing mode: inline or allpairs")
	flags.String("results", "results.tsv", "Results file, appended to; - for stdout")
	flags.Int("bins", similarity.DefaultConfig().Bins, "Number of histogram bins")
	flags.Bool("normalize", false, "Normalize histograms before comparing")
	flags.Int("cache-size", 16, "Number of decoded volumes kept in memory")

	for _, name := range []string{"files", "file-list", "measures", "measure-list", "mode", "results", "bins", "normalize", "cache-size"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			log.Error().Err(err).Str("flag", name).Msg("Error binding flag")
		}
	}
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	opts, err := loadCompareOptions(args)
	if err != nil {
		return err
	}
	log.Info().Int("files", len(opts.Files)).Str("mode", opts.Mode).Msg("init")

	cfg := similarity.DefaultConfig()
	cfg.Measures = opts.Measures
	cfg.Bins = opts.Bins
	cfg.Normalize = opts.Normalize
	cmp, err := similarity.New(cfg)
	if err != nil {
		return err
	}

	loader, err := newVolumeLoader(opts.CacheSize)
	if err != nil {
		return err
	}
	out, err := openResults(opts.Results)
	if err != nil {
		return err
	}

	if err := compareAll(cmd.Context(), cmp, loader, out, pairs(opts.Mode, opts.Files)); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Info().Str("results", opts.Results).Msg("done")
	return nil
}

func compareAll(ctx context.Context, cmp *similarity.Comparator, loader *volumeLoader, out *resultWriter, ps []filePair) error {
	for _, p := range ps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := comparePair(cmp, loader, out, p); err != nil {
			return err
		}
	}
	return nil
}

// comparePair evaluates one pair and writes its rows. Only a failure to write
// results is returned; load and measure failures become rows.
func comparePair(cmp *similarity.Comparator, loader *volumeLoader, out *resultWriter, p filePair) error {
	a, b, err := loader.Pair(p.first, p.second)
	if err != nil {
		log.Error().Err(err).Str("f1", p.first).Str("f2", p.second).Msg("problem loading pair")
		for _, m := range cmp.Measures() {
			if err := out.Write(p.first, p.second, similarity.Result{Measure: m.Name, Err: err}); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range cmp.Compare(a, b) {
		if r.Err != nil {
			log.Warn().Err(r.Err).Str("measure", r.Measure).Str("f1", p.first).Str("f2", p.second).
				Msg("problem during measurement")
		} else {
			log.Debug().Str("measure", r.Measure).Str("f1", p.first).Str("f2", p.second).
				Float64("value", r.Value).Dur("elapsed", r.Elapsed).Msg("comparison")
		}
		if err := out.Write(p.first, p.second, r); err != nil {
			return err
		}
	}
	return nil
}

func loadCompareOptions(args []string) (compareOptions, error) {
	opts := compareOptions{
		Files:     append(splitList(viper.GetStringSlice("files")), args...),
		Measures:  splitList(viper.GetStringSlice("measures")),
		Mode:      viper.GetString("mode"),
		Results:   viper.GetString("results"),
		Bins:      viper.GetInt("bins"),
		Normalize: viper.GetBool("normalize"),
		CacheSize: viper.GetInt("cache-size"),
	}

	if path := viper.GetString("file-list"); path != "" {
		files, err := readList(path)
		if err != nil {
			return opts, err
		}
		opts.Files = append(opts.Files, files...)
	}
	if path := viper.GetString("measure-list"); path != "" {
		measures, err := readList(path)
		if err != nil {
			return opts, err
		}
		if len(measures) == 0 {
			return opts, errors.Newf("could not load measures from %s", path)
		}
		opts.Measures = append(opts.Measures, measures...)
	}

	if opts.Mode != modeInline && opts.Mode != modeAllPairs {
		return opts, errors.Newf("unknown mode %q, want %s or %s", opts.Mode, modeInline, modeAllPairs)
	}
	if len(opts.Files) == 0 {
		return opts, errors.New("no volume files given")
	}
	return opts, nil
}

// splitList flattens comma-separated entries, which config files may use
// instead of YAML lists.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// readList reads one entry per line, skipping blank lines and # comments.
func readList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening list %s", path)
	}
	defer f.Close()

	var entries []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading list %s", path)
	}
	return entries, nil
}

type filePair struct {
	first, second string
}

// pairs lists the file pairs to compare in the given mode.
func pairs(mode string, files []string) []filePair {
	if len(files) == 0 {
		return nil
	}
	if mode == modeInline {
		out := make([]filePair, 0, len(files))
		for _, f := range files {
			out = append(out, filePair{files[0], f})
		}
		return out
	}
	out := make([]filePair, 0, len(files)*len(files))
	for _, f1 := range files {
		for _, f2 := range files {
			out = append(out, filePair{f1, f2})
		}
	}
	return out
}
