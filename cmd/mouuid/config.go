package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/Lzww0608/mouuid/gen"
)

// envPrefix scopes environment overrides, e.g. MOUUID_PACKAGE.
const envPrefix = "MOUUID"

var errDocNeedsSingleType = errors.New("mouuid: -doc requires exactly one type")

// Config is the file and environment form of a generation request.
type Config struct {
	Package string       `mapstructure:"package"`
	Output  string       `mapstructure:"output"`
	SQL     bool         `mapstructure:"sql"`
	Types   []TypeConfig `mapstructure:"types"`
}

// TypeConfig describes one identifier type.
type TypeConfig struct {
	Name string   `mapstructure:"name"`
	Doc  []string `mapstructure:"doc"`
}

func (c *Config) typeNames() []string {
	names := make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		names = append(names, t.Name)
	}
	return names
}

func (c *Config) genConfig() gen.Config {
	cfg := gen.Config{Package: c.Package, SQL: c.SQL}
	for _, t := range c.Types {
		cfg.Types = append(cfg.Types, gen.Definition{Name: t.Name, Doc: t.Doc})
	}
	return cfg
}

// splitTypes turns a comma-separated list of names into type entries.
func splitTypes(list string) []TypeConfig {
	var types []TypeConfig
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			types = append(types, TypeConfig{Name: name})
		}
	}
	return types
}

// typesFromString decodes the MOUUID_TYPES form, a comma-separated list of
// names, into the types key.
func typesFromString(from, to reflect.Type, data interface{}) (interface{}, error) {
	list, ok := data.(string)
	if !ok || from.Kind() != reflect.String || to != reflect.TypeOf([]TypeConfig(nil)) {
		return data, nil
	}
	return splitTypes(list), nil
}

type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, "\n")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type options struct {
	types    string
	docs     stringList
	pkg      string
	output   string
	config   string
	sql      bool
	logLevel string
	pretty   bool

	// set records the flags given on the command line.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("mouuid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.types, "type", "", "comma-separated list of identifier type names")
	fs.Var(&opts.docs, "doc", "documentation line for the type; repeatable, requires a single -type")
	fs.StringVar(&opts.pkg, "package", "", "package name of the generated file (default $GOPACKAGE)")
	fs.StringVar(&opts.output, "output", "", "output file or afs URL (default <type>_mouuid.go)")
	fs.StringVar(&opts.config, "config", "", "YAML file with package, output, sql and types")
	fs.BoolVar(&opts.sql, "sql", true, "generate database/sql Scan and Value methods")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error or off")
	fs.BoolVar(&opts.pretty, "pretty", false, "human readable log output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: mouuid [flags] -type T[,T...] | -config file.yaml\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("mouuid: unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// loadConfig layers defaults, the config file, environment variables and
// explicitly set flags, in increasing order of precedence.
func loadConfig(opts *options) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("package", "")
	v.SetDefault("output", "")
	v.SetDefault("sql", true)
	// types has no default, so it needs an explicit binding to be read from
	// MOUUID_TYPES.
	if err := v.BindEnv("types"); err != nil {
		return nil, fmt.Errorf("mouuid: bind environment: %w", err)
	}

	if opts.config != "" {
		v.SetConfigFile(opts.config)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("mouuid: read config %s: %w", opts.config, err)
		}
	}

	cfg := &Config{}
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.DecodeHookFuncType(typesFromString),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hooks); err != nil {
		return nil, fmt.Errorf("mouuid: decode config: %w", err)
	}

	if opts.set["package"] {
		cfg.Package = opts.pkg
	}
	if opts.set["output"] {
		cfg.Output = opts.output
	}
	if opts.set["sql"] {
		cfg.SQL = opts.sql
	}
	if opts.types != "" {
		cfg.Types = splitTypes(opts.types)
	}
	if len(opts.docs) > 0 {
		if len(cfg.Types) != 1 {
			return nil, errDocNeedsSingleType
		}
		cfg.Types[0].Doc = append(cfg.Types[0].Doc, opts.docs...)
	}

	if cfg.Package == "" {
		cfg.Package = os.Getenv("GOPACKAGE")
	}
	if cfg.Output == "" && len(cfg.Types) > 0 {
		cfg.Output = strings.ToLower(cfg.Types[0].Name) + "_mouuid.go"
	}
	return cfg, nil
}
