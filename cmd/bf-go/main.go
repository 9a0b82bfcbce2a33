// Copyright (c) 2024 Neomantra Corp
//
// bf-go transcodes a BF record stream between BF, CSV, and JSON, optionally
// compressing or splitting the output. Grounded on the teacher's
// cmd/dbn-go-file/main.go cobra idiom, generalized from three fixed
// subcommands into a single flag-driven transcoder.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/quantbin/bf-go"
)

var (
	flagJSON       bool
	flagCSV        bool
	flagBF         bool
	flagZstd       bool
	flagOutput     string
	flagForce      bool
	flagMetadata   bool
	flagPrettyJSON bool
	flagMapSymbols bool
	flagFragment   bool
	flagSplitBy    string
	flagVerbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "bf-go [flags] INPUT",
		Short:        "Transcode a BF record stream to BF, CSV, or JSON",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runTranscode,
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&flagJSON, "json", "J", false, "encode output as JSON")
	flags.BoolVarP(&flagCSV, "csv", "C", false, "encode output as CSV")
	flags.BoolVarP(&flagBF, "dbn", "D", false, "encode output as BF")
	flags.BoolVarP(&flagZstd, "zstd", "z", false, "Zstd-compress output")
	flags.StringVarP(&flagOutput, "output", "o", "", "output file (default: stdout)")
	flags.BoolVarP(&flagForce, "force", "f", false, "overwrite an existing output file")
	flags.BoolVarP(&flagMetadata, "metadata", "m", false, "emit metadata instead of the record stream (JSON only)")
	flags.BoolVarP(&flagPrettyJSON, "pretty-json", "p", false, "indent JSON output")
	flags.BoolVar(&flagMapSymbols, "map-symbols", false, "add a symbol field resolved via the symbol map")
	flags.BoolVar(&flagFragment, "fragment", false, "treat input as a bare record stream without metadata")
	flags.StringVar(&flagSplitBy, "split-by", "", "split output by {symbol|schema|day|week|month|publisher}, output must contain a placeholder")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "print the record count (or, with -m, resolved dataset venues) to stderr on completion")

	if err := rootCmd.Execute(); err != nil {
		if isBrokenPipe(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "bf-go:", err)
		os.Exit(1)
	}
}

func runTranscode(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	input, closeInput, err := openInput(args[0])
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer closeInput()

	policy := bf.Upgrade
	var dec *bf.Decoder
	if flagFragment {
		dec, err = bf.OpenFragmentDecoder(input, policy)
	} else {
		dec, err = bf.OpenDecoder(input, policy)
	}
	if err != nil {
		return fmt.Errorf("opening decoder: %w", err)
	}

	encoding, err := resolveEncoding()
	if err != nil {
		return err
	}

	out, closeOutput, err := openOutput()
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer closeOutput()

	compression := bf.None
	if flagZstd {
		compression = bf.ZStd
	}

	if flagMetadata {
		return encodeMetadataOnly(dec, out)
	}

	recordCount, err := transcodeRecords(dec, out, encoding, compression)
	if err != nil {
		if isBrokenPipe(err) {
			return nil
		}
		return err
	}
	if flagVerbose {
		fmt.Fprintf(os.Stderr, "bf-go: wrote %s records\n", humanize.Comma(int64(recordCount)))
	}
	return nil
}

func validateFlags() error {
	selected := 0
	for _, b := range []bool{flagJSON, flagCSV, flagBF} {
		if b {
			selected++
		}
	}
	if selected > 1 {
		return errors.New("only one of -J/-C/-D may be given")
	}
	if flagMetadata && !flagJSON {
		return errors.New("-m/--metadata is only valid with -J/--json")
	}
	if flagSplitBy != "" {
		switch flagSplitBy {
		case "symbol", "schema", "day", "week", "month", "publisher":
		default:
			return fmt.Errorf("unknown --split-by value %q", flagSplitBy)
		}
		if flagOutput == "" {
			return errors.New("--split-by requires -o/--output with a placeholder")
		}
	}
	return nil
}

// resolveEncoding picks the output encoding from an explicit flag, else
// infers it from the output path's extension, else defaults to BF.
func resolveEncoding() (bf.Encoding, error) {
	switch {
	case flagJSON:
		return bf.Json, nil
	case flagCSV:
		return bf.Csv, nil
	case flagBF:
		return bf.Bf, nil
	}
	if flagOutput == "" {
		return bf.Bf, nil
	}
	name := strings.TrimSuffix(flagOutput, ".zst")
	switch filepath.Ext(name) {
	case ".json":
		return bf.Json, nil
	case ".csv":
		return bf.Csv, nil
	case ".bf":
		return bf.Bf, nil
	}
	return bf.Bf, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewReader(f), func() { f.Close() }, nil
}

func openOutput() (io.Writer, func(), error) {
	if flagOutput == "" {
		return os.Stdout, func() {}, nil
	}
	if flagSplitBy != "" {
		// Split mode builds its own per-key writers; this path is unused.
		return nil, func() {}, nil
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !flagForce {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(flagOutput, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, nil, fmt.Errorf("output %q already exists (use -f to overwrite): %w", flagOutput, err)
		}
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func encodeMetadataOnly(dec *bf.Decoder, out io.Writer) error {
	// Decoding the metadata requires pulling at least one record through the
	// decoder, since the preamble is parsed lazily on first use.
	if dec.Metadata() == nil {
		if _, err := dec.DecodeRecordRef(); err != nil && err != io.EOF {
			return fmt.Errorf("decoding metadata: %w", err)
		}
	}
	meta := dec.Metadata()
	if meta == nil {
		return bf.ErrNoMetadata
	}
	compression := bf.None
	if flagZstd {
		compression = bf.ZStd
	}
	sink, err := bf.WrapCompressingWriter(out, compression)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(sink)
	enc := bf.NewJSONEncoder(w, encodeOptions())
	if err := enc.EncodeMetadata(meta); err != nil {
		sink.Close()
		return err
	}
	if flagVerbose {
		if venues := datasetVenues(meta.Dataset); venues != "" {
			fmt.Fprintf(os.Stderr, "bf-go: dataset %s venues: %s\n", meta.Dataset, venues)
		}
	}
	if err := w.Flush(); err != nil {
		sink.Close()
		return err
	}
	return sink.Close()
}

// datasetVenues resolves a metadata dataset string (e.g. "GLBX.MDP3") to the
// comma-joined venues that publish it, via the publisher registry. Returns
// "" for a dataset string the registry doesn't recognize.
func datasetVenues(dataset string) string {
	ds, err := bf.DatasetFromString(dataset)
	if err != nil {
		return ""
	}
	publishers := ds.Publishers()
	venues := make([]string, 0, len(publishers))
	for _, p := range publishers {
		venues = append(venues, p.Venue().String())
	}
	return strings.Join(venues, ",")
}

func transcodeRecords(dec *bf.Decoder, out io.Writer, encoding bf.Encoding, compression bf.Compression) (int, error) {
	opts := encodeOptions()

	var symbolMap *bf.TsSymbolMap
	if flagMapSymbols {
		symbolMap = bf.NewTsSymbolMap()
	}

	// Metadata decodes lazily, on the same call that decodes the first
	// record; pull it now so the encoder can re-emit the preamble up front,
	// keeping the first decoded record to encode once the encoder exists.
	var pending bf.RecordRef
	var pendingErr error
	pulledFirst := false
	if meta := dec.Metadata(); meta == nil {
		pending, pendingErr = dec.DecodeRecordRef()
		if pendingErr != nil && pendingErr != io.EOF {
			return 0, fmt.Errorf("decoding metadata: %w", pendingErr)
		}
		pulledFirst = true
	}
	meta := dec.Metadata()
	if symbolMap != nil && meta != nil {
		if err := symbolMap.FillFromMetadata(meta); err != nil {
			return 0, fmt.Errorf("building symbol map: %w", err)
		}
	}

	var topEncoder bf.Encoder
	var err error
	if flagSplitBy != "" {
		topEncoder = bf.NewSplitEncoder(splitKeyFromFlag(), symbolMap, meta, func(key string, m *bf.Metadata) (bf.Encoder, error) {
			path := strings.ReplaceAll(flagOutput, "{symbol}", key)
			path = strings.ReplaceAll(path, "{schema}", key)
			path = strings.ReplaceAll(path, "{date}", key)
			path = strings.ReplaceAll(path, "{publisher}", key)
			f, ferr := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
			if ferr != nil {
				return nil, ferr
			}
			return bf.NewDynEncoder(f, encoding, compression, m, opts)
		})
	} else {
		topEncoder, err = bf.NewDynEncoder(out, encoding, compression, meta, opts)
	}
	if err != nil {
		return 0, fmt.Errorf("opening encoder: %w", err)
	}

	// The first iteration consumes the record already pulled above, if the
	// metadata preamble forced one; every later iteration decodes fresh.
	var rr bf.RecordRef
	var derr error
	first := true

	count := 0
	for {
		if first && pulledFirst {
			rr, derr = pending, pendingErr
		} else {
			rr, derr = dec.DecodeRecordRef()
		}
		first = false

		if derr == io.EOF {
			break
		}
		if derr != nil {
			topEncoder.Close()
			return count, fmt.Errorf("decoding record %d: %w", count, derr)
		}
		symbolCstrLen := bf.SymbolCstrLenV2
		if meta != nil {
			symbolCstrLen = meta.SymbolCstrLen
		}
		symbol := ""
		if symbolMap != nil {
			dt := bf.TimestampToTime(rr.IndexTs()).UTC()
			symbol = symbolMap.Get(dt, rr.Header().InstrumentID)
		}
		if err := topEncoder.EncodeRecordRef(rr, symbolCstrLen, symbol); err != nil {
			topEncoder.Close()
			return count, fmt.Errorf("encoding record %d: %w", count, err)
		}
		count++
	}
	if err := topEncoder.Close(); err != nil {
		return count, err
	}
	return count, nil
}

func splitKeyFromFlag() bf.SplitKey {
	switch flagSplitBy {
	case "symbol":
		return bf.SplitBySymbol
	case "schema":
		return bf.SplitBySchema
	case "day":
		return bf.SplitByDay
	case "week":
		return bf.SplitByWeek
	case "month":
		return bf.SplitByMonth
	case "publisher":
		return bf.SplitByPublisher
	}
	return bf.SplitBySchema
}

func encodeOptions() bf.EncodeOptions {
	opts := bf.DefaultEncodeOptions()
	opts.PrettyPx = true
	opts.PrettyTs = true
	opts.WithSymbol = flagMapSymbols
	opts.ShouldPrettyPrint = flagPrettyJSON
	return opts
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
