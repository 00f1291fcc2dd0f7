// Command mouuid generates strongly-typed UUID identifier types.
//
// It is meant to be run by go generate:
//
//	//go:generate mouuid -type=EntityId,AssetId
//	//go:generate mouuid -type=EntityId -doc="An EntityId is a very good id."
//	//go:generate mouuid -config=mouuid.yaml
//
// Every named type becomes a struct wrapping one public uuid.UUID field, with
// NewT, TFromUUID and ParseT constructors, a T(uuid) String method and
// transparent text, binary and SQL codecs. Settings are layered: defaults,
// then the -config YAML file, then MOUUID_* environment variables, then flags.
// MOUUID_TYPES takes the same comma-separated list as -type. The package name
// falls back to $GOPACKAGE.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/Lzww0608/mouuid/gen"
	"github.com/Lzww0608/mouuid/internal/log"
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	default:
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := log.New(log.Config{Level: opts.logLevel, Pretty: opts.pretty}, stderr)

	cfg, err := loadConfig(opts)
	if err != nil {
		logger.Error().Err(err).Str(log.FieldConfig, opts.config).Msg("invalid configuration")
		return err
	}
	names := cfg.typeNames()
	logger.Debug().
		Str(log.FieldPackage, cfg.Package).
		Strs(log.FieldTypes, names).
		Bool("sql", cfg.SQL).
		Msg("configuration loaded")

	src, err := gen.Generate(cfg.genConfig())
	if err != nil {
		logger.Error().Err(err).Strs(log.FieldTypes, names).Msg("generation failed")
		return err
	}

	output, err := resolveOutput(cfg.Output)
	if err != nil {
		logger.Error().Err(err).Str(log.FieldOutput, cfg.Output).Msg("invalid output")
		return err
	}
	changed, err := write(ctx, afs.New(), output, src)
	if err != nil {
		logger.Error().Err(err).Str(log.FieldOutput, output).Msg("write failed")
		return err
	}

	msg := "generated"
	if !changed {
		msg = "unchanged"
	}
	logger.Info().
		Str(log.FieldPackage, cfg.Package).
		Strs(log.FieldTypes, names).
		Str(log.FieldOutput, output).
		Int(log.FieldBytes, len(src)).
		Msg(msg)
	return nil
}

// resolveOutput turns a plain relative path into an absolute one; URLs with a
// scheme are passed to afs untouched.
func resolveOutput(output string) (string, error) {
	if strings.Contains(output, "://") || filepath.IsAbs(output) {
		return output, nil
	}
	return filepath.Abs(output)
}

// write stores src at URL unless identical content is already there.
func write(ctx context.Context, fs afs.Service, URL string, src []byte) (bool, error) {
	exists, err := fs.Exists(ctx, URL)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", URL, err)
	}
	if exists {
		current, err := fs.DownloadWithURL(ctx, URL)
		if err == nil && bytes.Equal(current, src) {
			return false, nil
		}
	}
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(src)); err != nil {
		return false, fmt.Errorf("write %s: %w", URL, err)
	}
	return true, nil
}
