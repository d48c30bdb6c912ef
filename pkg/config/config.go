package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/utils"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

type (
	// Config holds user overrides for a formatter configuration.
	//
	// Every field is optional. A nil field keeps the value of the selected
	// dialect preset, so a config file only needs to name what it changes.
	// Key names follow the camel-cased option names used by sqlformatter style
	// config files (reservedKeywordUppercase, linesBetweenQueries, ...).
	Config struct {
		// Dialect selects the preset the overrides are applied to (hiveql or
		// sparksql). Defaults to hiveql.
		Dialect *string `yaml:"dialect,omitempty"`

		ReservedKeywords         *[]string `yaml:"reservedKeywords,omitempty"`
		Keywords                 *[]string `yaml:"keywords,omitempty"`
		UserDefinedFunctions     *[]string `yaml:"userDefinedFunctions,omitempty"`
		TopLevelKeywords         *[]string `yaml:"topLevelKeywords,omitempty"`
		TopLevelKeywordsNoIndent *[]string `yaml:"topLevelKeywordsNoIndent,omitempty"`
		NewlineKeywords          *[]string `yaml:"newlineKeywords,omitempty"`
		OpenParens               *[]string `yaml:"openParens,omitempty"`
		CloseParens              *[]string `yaml:"closeParens,omitempty"`
		StringTypes              *[]string `yaml:"stringTypes,omitempty"`
		LineCommentTypes         *[]string `yaml:"lineCommentTypes,omitempty"`
		SpecialWordChars         *[]string `yaml:"specialWordChars,omitempty"`
		InlineGroups             *[]string `yaml:"inlineGroups,omitempty"`

		ReservedKeywordUppercase *bool   `yaml:"reservedKeywordUppercase,omitempty"`
		Indent                   *string `yaml:"indent,omitempty"`
		LinesBetweenQueries      *int    `yaml:"linesBetweenQueries,omitempty"`
		InlineMaxLength          *int    `yaml:"inlineMaxLength,omitempty"`

		// SplitOnComma is the boolean form of CommaSplit: true is "always",
		// false is "overflow". CommaSplit wins when both are set.
		SplitOnComma *bool               `yaml:"splitOnComma,omitempty"`
		CommaSplit   *format.CommaPolicy `yaml:"commaSplit,omitempty"`
	}

	// document allows the settings to live at the root of a YAML file or under
	// a "sqlfmt" key.
	document struct {
		Section *Config `yaml:"sqlfmt"`
		Config  `yaml:",inline"`
	}
)

// LoadConfig parses a YAML configuration from the provided io.Reader.
//
// Settings may be given at the root of the document or nested under a
// "sqlfmt" key, which lets the formatter share a file with other tools. An
// empty document is an empty Config.
//
// Example:
//
//	yamlData := `
//	dialect: sparksql
//	indent: "  "
//	reservedKeywordUppercase: false
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmtCfg, err := cfg.Resolve()
func LoadConfig(r io.Reader) (*Config, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}

		return nil, errors.Wrap(err, "failed to unmarshal sqlfmt config")
	}

	if doc.Section != nil {
		return doc.Section, nil
	}

	return &doc.Config, nil
}

// LoadINI parses the [sqlfmt] section of an INI document.
//
// Values are decoded the same way YAML values are, so lists and booleans can
// be written as literals:
//
//	[sqlfmt]
//	dialect = sparksql
//	reservedKeywordUppercase = False
//	topLevelKeywords = ['SELECT', 'FROM', 'WHERE']
//	indent = '  '
func LoadINI(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read ini config")
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
	}, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal ini config")
	}

	section, err := file.GetSection(consts.ConfigSection)
	if err != nil {
		return nil, errors.Wrapf(format.ErrInvalidConfig, "missing [%s] section", consts.ConfigSection)
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range section.Keys() {
		value, err := decodeValue(key.Value())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value for %s", key.Name())
		}

		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key.Name()},
			value,
		)
	}

	var cfg Config
	if err := mapping.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal ini config")
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path. Files
// ending in .yaml or .yml are read with LoadConfig, anything else with
// LoadINI.
//
// Example:
//
//	cfg, err := config.LoadConfigFile(".sqlfmt.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadConfig(f)
	default:
		return LoadINI(f)
	}
}

// Parse loads a configuration from a --config style value: either a path to
// a config file or an inline dictionary starting with "{".
//
// Inline dictionaries are YAML flow mappings, so JSON objects and
// python-style dicts both work. Escapes such as \t are only processed inside
// double quotes:
//
//	cfg, err := config.Parse(`{'reservedKeywordUppercase': False, 'indent': "\t"}`)
func Parse(value string) (*Config, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "{") {
		return LoadConfigFile(value)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(value), &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal inline config")
	}

	return &cfg, nil
}

// Merge returns a new Config where every field set in other replaces the one
// in c. Either side may be nil.
func (c *Config) Merge(other *Config) *Config {
	var merged Config
	if c != nil {
		merged = *c
	}

	if other == nil {
		return &merged
	}

	merged.Dialect = utils.Coalesce(merged.Dialect, other.Dialect)
	merged.ReservedKeywords = utils.Coalesce(merged.ReservedKeywords, other.ReservedKeywords)
	merged.Keywords = utils.Coalesce(merged.Keywords, other.Keywords)
	merged.UserDefinedFunctions = utils.Coalesce(merged.UserDefinedFunctions, other.UserDefinedFunctions)
	merged.TopLevelKeywords = utils.Coalesce(merged.TopLevelKeywords, other.TopLevelKeywords)
	merged.TopLevelKeywordsNoIndent = utils.Coalesce(merged.TopLevelKeywordsNoIndent, other.TopLevelKeywordsNoIndent)
	merged.NewlineKeywords = utils.Coalesce(merged.NewlineKeywords, other.NewlineKeywords)
	merged.OpenParens = utils.Coalesce(merged.OpenParens, other.OpenParens)
	merged.CloseParens = utils.Coalesce(merged.CloseParens, other.CloseParens)
	merged.StringTypes = utils.Coalesce(merged.StringTypes, other.StringTypes)
	merged.LineCommentTypes = utils.Coalesce(merged.LineCommentTypes, other.LineCommentTypes)
	merged.SpecialWordChars = utils.Coalesce(merged.SpecialWordChars, other.SpecialWordChars)
	merged.InlineGroups = utils.Coalesce(merged.InlineGroups, other.InlineGroups)
	merged.ReservedKeywordUppercase = utils.Coalesce(merged.ReservedKeywordUppercase, other.ReservedKeywordUppercase)
	merged.Indent = utils.Coalesce(merged.Indent, other.Indent)
	merged.LinesBetweenQueries = utils.Coalesce(merged.LinesBetweenQueries, other.LinesBetweenQueries)
	merged.InlineMaxLength = utils.Coalesce(merged.InlineMaxLength, other.InlineMaxLength)
	merged.SplitOnComma = utils.Coalesce(merged.SplitOnComma, other.SplitOnComma)
	merged.CommaSplit = utils.Coalesce(merged.CommaSplit, other.CommaSplit)

	return &merged
}

// Apply returns base with every set field replaced. Slices are copied, so the
// result shares no state with c.
func (c *Config) Apply(base format.Config) format.Config {
	cfg := base.Clone()
	if c == nil {
		return cfg
	}

	utils.Assign(&cfg.ReservedKeywords, c.ReservedKeywords)
	utils.Assign(&cfg.Keywords, c.Keywords)
	utils.Assign(&cfg.UserDefinedFunctions, c.UserDefinedFunctions)
	utils.Assign(&cfg.TopLevelKeywords, c.TopLevelKeywords)
	utils.Assign(&cfg.TopLevelKeywordsNoIndent, c.TopLevelKeywordsNoIndent)
	utils.Assign(&cfg.NewlineKeywords, c.NewlineKeywords)
	utils.Assign(&cfg.OpenParens, c.OpenParens)
	utils.Assign(&cfg.CloseParens, c.CloseParens)
	utils.Assign(&cfg.StringTypes, c.StringTypes)
	utils.Assign(&cfg.LineCommentTypes, c.LineCommentTypes)
	utils.Assign(&cfg.SpecialWordChars, c.SpecialWordChars)
	utils.Assign(&cfg.InlineGroups, c.InlineGroups)
	utils.Assign(&cfg.ReservedKeywordUppercase, c.ReservedKeywordUppercase)
	utils.Assign(&cfg.Indent, c.Indent)
	utils.Assign(&cfg.LinesBetweenQueries, c.LinesBetweenQueries)
	utils.Assign(&cfg.InlineMaxLength, c.InlineMaxLength)

	if c.SplitOnComma != nil {
		cfg.CommaSplit = format.CommaSplitOverflow
		if *c.SplitOnComma {
			cfg.CommaSplit = format.CommaSplitAlways
		}
	}
	utils.Assign(&cfg.CommaSplit, c.CommaSplit)

	return cfg.Clone()
}

// Resolve selects the dialect preset, applies the overrides and validates the
// result. Errors wrap format.ErrInvalidConfig.
func (c *Config) Resolve() (format.Config, error) {
	name := format.DialectHiveQL
	if c != nil && c.Dialect != nil {
		name = *c.Dialect
	}

	base, err := format.Dialect(name)
	if err != nil {
		return format.Config{}, err
	}

	cfg := c.Apply(base)
	if err := cfg.Validate(); err != nil {
		return format.Config{}, err
	}

	return cfg, nil
}

// decodeValue turns a raw INI value into a YAML node. Empty values decode to
// an empty string.
func decodeValue(raw string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}

	if len(doc.Content) == 0 {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strings.TrimSpace(raw)}, nil
	}

	return doc.Content[0], nil
}

// String renders the overrides as YAML, mostly for debug logging.
func (c *Config) String() string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	_ = enc.Encode(c)
	_ = enc.Close()

	return strings.TrimSpace(buf.String())
}
