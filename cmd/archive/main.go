package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/archive/codec"
	"github.com/wippyai/archive/config"
	"github.com/wippyai/archive/errors"
	"github.com/wippyai/archive/frame"
	"github.com/wippyai/archive/shape"
	"github.com/wippyai/archive/stream"
)

type options struct {
	shape       string
	encode      string
	out         string
	in          string
	config      string
	raw         bool
	hex         bool
	wit         bool
	interactive bool
}

func main() {
	var opts options
	flag.StringVar(&opts.shape, "shape", "", "Shape of the archived value, e.g. map<string,list<s64>>")
	flag.StringVar(&opts.encode, "encode", "", "JSON value to encode")
	flag.StringVar(&opts.out, "out", "", "Output file for -encode (default stdout)")
	flag.StringVar(&opts.in, "in", "", "Archive files to decode (comma-separated)")
	flag.StringVar(&opts.config, "config", "", "YAML config file")
	flag.BoolVar(&opts.raw, "raw", false, "Read and write bare archives without the checksummed frame")
	flag.BoolVar(&opts.hex, "hex", false, "Write -encode output as a hex dump")
	flag.BoolVar(&opts.wit, "wit", false, "Print the WIT type of -shape and exit")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive mode with TUI")
	flag.Parse()

	if opts.shape == "" {
		fmt.Fprintln(os.Stderr, "Usage: archive -shape <shape> -encode <json> [-out file] [-hex]")
		fmt.Fprintln(os.Stderr, "       archive -shape <shape> -in <file[,file...]>")
		fmt.Fprintln(os.Stderr, "       archive -shape <shape> -wit")
		fmt.Fprintln(os.Stderr, "       archive -shape <shape> [-in files] -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if status := errors.Status(err); status != errors.StatusUnknown {
			fmt.Fprintf(os.Stderr, "Status: %d\n", status)
		}
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := loadConfig(opts.config, opts.raw)
	if err != nil {
		return err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	codec.SetLogger(logger)

	s, err := shape.Parse(opts.shape)
	if err != nil {
		return err
	}

	var files []string
	if opts.in != "" {
		files = strings.Split(opts.in, ",")
	}

	switch {
	case opts.wit:
		fmt.Println(shape.FormatWIT(s.WIT()))
		return nil
	case opts.interactive:
		return runInteractive(cfg, s, files)
	case opts.encode != "":
		return encode(cfg, s, opts.encode, opts.out, opts.hex)
	case len(files) > 0:
		return decode(context.Background(), cfg, logger, s, files)
	default:
		return fmt.Errorf("nothing to do: give -encode, -in, -wit or -i")
	}
}

func loadConfig(path string, raw bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}
	if raw {
		cfg.Frame = false
	}
	return cfg, nil
}

func encode(cfg *config.Config, s *shape.Shape, input, outFile string, hexOut bool) error {
	c, err := shape.Compile(s, cfg.CodecOptions()...)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	v, err := shape.ParseJSON(s, []byte(input))
	if err != nil {
		return fmt.Errorf("parse value: %w", err)
	}

	data, err := encodeValue(cfg, c, v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if outFile == "" {
		return writeOutput(os.Stdout, data, hexOut)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	return writeAndClose(f, data, hexOut)
}

// writeAndClose writes data to w and closes it. A failed close is reported
// when the write itself succeeded.
func writeAndClose(w io.WriteCloser, data []byte, hexOut bool) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return writeOutput(w, data, hexOut)
}

func writeOutput(w io.Writer, data []byte, hexOut bool) error {
	var err error
	if hexOut {
		_, err = io.WriteString(w, hex.Dump(data))
	} else {
		err = stream.FromWriter(w).Append(data)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func encodeValue(cfg *config.Config, c codec.Codec[any], v any) ([]byte, error) {
	w := stream.NewWriter()
	var err error
	if cfg.Frame {
		err = frame.Encode(w, c, v)
	} else {
		err = c.Encode(w, v)
	}
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func decodeValue(cfg *config.Config, c codec.Codec[any], data []byte) (any, error) {
	var v any
	if cfg.Frame {
		r := stream.NewBytesReader(data)
		err := frame.DecodeLimit(r, c, &v, cfg.FrameLimit())
		var pe *stream.PositionError
		if err != nil && !errors.As(err, &pe) {
			err = r.WrapError(err)
		}
		return v, err
	}
	err := codec.Unmarshal(c, data, &v)
	return v, err
}

type decoded struct {
	value any
	err   error
	file  string
}

// decodeFiles decodes every file concurrently. A failed file does not stop
// the others; its error is kept in its result.
func decodeFiles(ctx context.Context, cfg *config.Config, logger *zap.Logger, s *shape.Shape, files []string) ([]decoded, error) {
	c, err := shape.Compile(s, cfg.CodecOptions()...)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	results := make([]decoded, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			v, err := decodeValue(cfg, c, data)
			if err != nil {
				logger.Debug("decode failed",
					zap.String("file", file),
					zap.Int("status", errors.Status(err)),
					zap.Error(err),
				)
			}
			results[i] = decoded{file: file, value: v, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func decode(ctx context.Context, cfg *config.Config, logger *zap.Logger, s *shape.Shape, files []string) error {
	results, err := decodeFiles(ctx, cfg, logger, s, files)
	if err != nil {
		return err
	}

	var firstErr error
	for _, r := range results {
		if r.err != nil {
			fmt.Printf("%s: error (status %d): %v\n", r.file, errors.Status(r.err), r.err)
			if firstErr == nil {
				firstErr = fmt.Errorf("decode %s: %w", r.file, r.err)
			}
			continue
		}
		fmt.Printf("%s: %s\n", r.file, shape.Format(s, r.value))
	}
	return firstErr
}
