package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-renderctx"
)

// profileConfig holds parsed flags shared by doctype, contenttype and precontent
type profileConfig struct {
	preset     string
	language   string
	version    float64
	dialect    string
	configPath string
	strict     bool
	format     string
	outputPath string
}

// profileOutput represents JSON output for a render context
type profileOutput struct {
	Preset      string  `json:"preset"`
	Language    string  `json:"language"`
	Version     float64 `json:"version"`
	Dialect     string  `json:"dialect"`
	Doctype     string  `json:"doctype"`
	ContentType string  `json:"content_type"`
	XMLSyntax   bool    `json:"xml_syntax"`
}

func runDoctype(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseProfileFlags(CmdNameDoctype, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	rc, strict, code := loadContext(cfg, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	doctype, _ := rc.Doctype()
	data := []byte(doctype + FmtNewline)
	if cfg.format == OutputFormatJSON {
		if data, err = marshalJSON(describeContext(rc, strict)); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
			return ExitCodeError
		}
	}
	return emit(cfg.outputPath, data, stdout, stderr)
}

func runContentType(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseProfileFlags(CmdNameContentType, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	rc, strict, code := loadContext(cfg, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	data := []byte(rc.ContentType(strict) + FmtNewline)
	if cfg.format == OutputFormatJSON {
		if data, err = marshalJSON(describeContext(rc, strict)); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
			return ExitCodeError
		}
	}
	return emit(cfg.outputPath, data, stdout, stderr)
}

func runPreContent(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseProfileFlags(CmdNamePreContent, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	rc, _, code := loadContext(cfg, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	pre, err := rc.RenderPreContent()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgProfileFailed, err)
		return ExitCodeValidationError
	}
	return emit(cfg.outputPath, []byte(pre), stdout, stderr)
}

func parseProfileFlags(name string, args []string) (*profileConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &profileConfig{}

	fs.StringVar(&cfg.preset, FlagPreset, "", "")
	fs.StringVar(&cfg.preset, FlagPresetShort, "", "")
	fs.StringVar(&cfg.language, FlagLanguage, "", "")
	fs.StringVar(&cfg.language, FlagLanguageShort, "", "")
	fs.Float64Var(&cfg.version, FlagLangVersion, 0, "")
	fs.Float64Var(&cfg.version, FlagLangVersionShort, 0, "")
	fs.StringVar(&cfg.dialect, FlagDialect, "", "")
	fs.StringVar(&cfg.dialect, FlagDialectShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	if name != CmdNamePreContent {
		fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
		fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	}
	if name == CmdNameContentType {
		fs.BoolVar(&cfg.strict, FlagStrict, false, "")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.preset != "" && cfg.language != "" {
		return nil, errors.New(ErrMsgConflictingProfile)
	}
	if name != CmdNamePreContent {
		if err := validateOutputFormat(cfg.format); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// loadContext builds the render context selected by the flags: an explicit
// language, a preset, the config file's default preset or the built-in
// default, in that order. Explicit version and dialect flags override the
// preset's. It reports failures on stderr and returns their exit code.
func loadContext(cfg *profileConfig, stderr io.Writer) (*renderctx.RenderContext, bool, int) {
	strict := cfg.strict
	var rc *renderctx.RenderContext

	switch {
	case cfg.language != "":
		rc = renderctx.NewBuilder().
			Language(renderctx.Language(cfg.language)).
			Version(cfg.version).
			Dialect(renderctx.Dialect(cfg.dialect)).
			Build()
	default:
		preset := cfg.preset
		if preset == "" && cfg.configPath != "" {
			fileCfg, err := renderctx.LoadConfigFile(cfg.configPath)
			if err != nil {
				fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadConfigFailed, err)
				return nil, false, ExitCodeInputError
			}
			preset = fileCfg.DefaultPreset
			strict = strict || fileCfg.StrictContentType
		}
		if preset == "" {
			preset = renderctx.DefaultMiddlewarePreset
		}

		base, err := renderctx.MakeContext(preset)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgProfileFailed, err)
			return nil, false, ExitCodeValidationError
		}
		b := renderctx.BuilderFrom(base)
		if cfg.version != 0 {
			b.Version(cfg.version)
		}
		if cfg.dialect != "" {
			b.Dialect(renderctx.Dialect(cfg.dialect))
		}
		rc = b.Build()
	}

	if err := rc.Profile().Validate(); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgProfileFailed, err)
		return nil, false, ExitCodeValidationError
	}
	return rc, strict, ExitCodeSuccess
}

func describeContext(rc *renderctx.RenderContext, strict bool) profileOutput {
	doctype, _ := rc.Doctype()
	return profileOutput{
		Preset:      rc.String(),
		Language:    string(rc.Language()),
		Version:     rc.Version(),
		Dialect:     string(rc.Dialect()),
		Doctype:     doctype,
		ContentType: rc.ContentType(strict),
		XMLSyntax:   rc.IsXMLSyntax(),
	}
}

// emit writes command output and maps write failures to an exit code
func emit(path string, data []byte, stdout, stderr io.Writer) int {
	if err := writeOutput(path, data, stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}
