package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/bigo/cache"
	"github.com/arloliu/bigo/complexity"
	"github.com/arloliu/bigo/dataset"
	"github.com/arloliu/bigo/format"
)

// stdinSource names observations read from standard input.
const stdinSource = "-"

// report is the outcome of inferring one input.
type report struct {
	Source string                  `json:"source"`
	Best   *complexity.Complexity  `json:"best,omitempty"`
	Fits   []complexity.Complexity `json:"fits,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

type inferFlags struct {
	output      string
	strict      bool
	tolerance   float64
	candidates  []string
	encoding    string
	compression string
	all         bool
}

func newInferCmd(a *app) *cobra.Command {
	var f inferFlags

	cmd := &cobra.Command{
		Use:   "infer [files...]",
		Short: "Infer the complexity class of observation files",
		Long: `Infer the complexity class of each observation file.

The encoding and compression of a file are detected from its extensions
(.csv, .json, .yaml, .yml, optionally followed by .zst, .s2 or .lz4).
Without files, observations are read from standard input using --encoding
and --compression.`,
		Example: `  # Classify one benchmark file
  bigo infer sort.csv

  # Several files, JSON output, strict validation
  bigo infer --format json --strict runs/*.json.zst

  # Pipe observations in
  printf '1,17\n2,27\n3,37\n' | bigo infer`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.merge(cmd, a.cfg)
			if err != nil {
				return err
			}

			return runInfer(cmd, a.logger, cfg, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.output, "format", "f", OutputTable, "output format: table or json")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "drop fits with a negative gain or that degrade to a simpler class")
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", complexity.DefaultTieTolerance, "score difference treated as a tie")
	cmd.Flags().StringSliceVar(&f.candidates, "candidates", nil, "restrict inference to these classes (notation or name)")
	cmd.Flags().StringVar(&f.encoding, "encoding", "csv", "stdin encoding: csv, json or yaml")
	cmd.Flags().StringVar(&f.compression, "compression", "none", "stdin compression: none, zstd, s2 or lz4")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "show every successful fit, not only the best")

	return cmd
}

// merge overlays explicitly set flags on the file configuration.
func (f inferFlags) merge(cmd *cobra.Command, cfg Config) (Config, error) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output = f.output
	}
	if flags.Changed("strict") {
		cfg.Strict = f.strict
	}
	if flags.Changed("tolerance") {
		cfg.TieTolerance = f.tolerance
	}
	if flags.Changed("candidates") {
		cfg.Candidates = f.candidates
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func runInfer(cmd *cobra.Command, logger *slog.Logger, cfg Config, f inferFlags, files []string) error {
	opts, err := cfg.InferOptions()
	if err != nil {
		return err
	}
	inferrer, err := cache.New(
		cache.WithSize(cfg.CacheSize),
		cache.WithLogger(logger),
		cache.WithInferOptions(opts...),
	)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		files = []string{stdinSource}
	}

	reports := make([]report, 0, len(files))
	failed := 0
	for _, src := range files {
		r := inferSource(cmd.InOrStdin(), inferrer, f, src)
		if r.Error != "" {
			failed++
			logger.Warn("inference failed", slog.String("source", src), slog.String("error", r.Error))
		} else {
			logger.Info("inferred", slog.String("source", src), slog.String("complexity", r.Best.Notation))
		}
		reports = append(reports, r)
	}

	stats := inferrer.Stats()
	logger.Debug("cache", slog.Uint64("hits", stats.Hits), slog.Uint64("misses", stats.Misses))

	if err := writeReports(cmd.OutOrStdout(), cfg.Output, reports, f.all); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(files))
	}

	return nil
}

func inferSource(stdin io.Reader, inferrer *cache.Inferrer, f inferFlags, src string) report {
	r := report{Source: src}

	var (
		points []complexity.Point
		err    error
	)
	if src == stdinSource {
		points, err = loadStdin(stdin, f)
	} else {
		points, err = dataset.LoadFile(src)
	}
	if err != nil {
		r.Error = err.Error()
		return r
	}

	best, all, err := inferrer.Infer(points)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Best = &best
	r.Fits = all

	return r
}

func loadStdin(stdin io.Reader, f inferFlags) ([]complexity.Point, error) {
	enc, err := format.ParseEncoding(f.encoding)
	if err != nil {
		return nil, err
	}
	comp, err := format.ParseCompression(f.compression)
	if err != nil {
		return nil, err
	}

	return dataset.Load(stdin, enc, comp)
}

func writeReports(w io.Writer, output string, reports []report, all bool) error {
	if output == OutputJSON {
		if !all {
			for i := range reports {
				reports[i].Fits = nil
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(reports)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tCOMPLEXITY\tNAME\tSCORE\tPARAMS")
	for _, r := range reports {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\t-\t-\t-\terror: %s\n", r.Source, r.Error)
			continue
		}
		fits := []complexity.Complexity{*r.Best}
		if all {
			fits = r.Fits
		}
		for i, c := range fits {
			src := r.Source
			if i > 0 {
				src = ""
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.4g\t%s\n", src, c.Notation, c.Name, c.Score, c.Params)
		}
	}

	return tw.Flush()
}
