package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"

	"github.com/beevik/etree"
	"github.com/itsatony/go-renderctx"
)

// negotiateConfig holds parsed negotiate command configuration
type negotiateConfig struct {
	url         string
	accept      string
	canonical   string
	force       string
	bodyPath    string
	contentType string
	format      string
	outputPath  string
}

// negotiateOutput represents JSON output for negotiation
type negotiateOutput struct {
	Format   string `json:"format"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	CleanURL string `json:"clean_url"`
	BodyType string `json:"body_type,omitempty"`
	Body     any    `json:"body,omitempty"`
	BodyRoot string `json:"body_root,omitempty"`
}

func runNegotiate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseNegotiateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	var body []byte
	if cfg.bodyPath != "" {
		if body, err = readInput(cfg.bodyPath, stdin); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadStdinFailed, err)
			return ExitCodeInputError
		}
	}

	headers := make(map[string]string)
	if cfg.accept != "" {
		headers[renderctx.HeaderAccept] = cfg.accept
	}
	if cfg.contentType != "" {
		headers[renderctx.HeaderContentType] = cfg.contentType
	}

	req := renderctx.NewRequest(cfg.url, http.MethodGet, nil, string(body), headers, renderctx.Format(cfg.canonical))
	if cfg.force != "" {
		req.SetResponseFormat(renderctx.Format(cfg.force))
	}

	output := negotiateOutput{
		Format:   NegotiateNoFormat,
		Source:   string(req.ResponseFormatSource()),
		URL:      req.URL(false),
		CleanURL: req.URL(true),
	}
	if format, ok := req.ResponseFormat(); ok {
		output.Format = string(format)
	}

	if len(body) > 0 {
		output.BodyType = req.BodyContentType()
		decoded, err := req.Body()
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgDecodeBodyFailed, err)
			return ExitCodeInputError
		}
		if doc, ok := decoded.(*etree.Document); ok {
			if root := doc.Root(); root != nil {
				output.BodyRoot = root.Tag
			}
		} else {
			output.Body = decoded
		}
	}

	var data []byte
	if cfg.format == OutputFormatJSON {
		if data, err = marshalJSON(output); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
			return ExitCodeError
		}
	} else {
		text := fmt.Sprintf(NegotiateTextTemplate+FmtNewline, output.Format, output.Source, output.URL, output.CleanURL)
		if output.BodyType != "" {
			text += fmt.Sprintf(NegotiateBodyTemplate+FmtNewline, output.BodyType)
		}
		data = []byte(text)
	}

	return emit(cfg.outputPath, data, stdout, stderr)
}

func parseNegotiateFlags(args []string) (*negotiateConfig, error) {
	fs := flag.NewFlagSet(CmdNameNegotiate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &negotiateConfig{}

	fs.StringVar(&cfg.url, FlagURL, "", "")
	fs.StringVar(&cfg.url, FlagURLShort, "", "")
	fs.StringVar(&cfg.accept, FlagAccept, "", "")
	fs.StringVar(&cfg.accept, FlagAcceptShort, "", "")
	fs.StringVar(&cfg.canonical, FlagCanonical, "", "")
	fs.StringVar(&cfg.force, FlagForce, "", "")
	fs.StringVar(&cfg.bodyPath, FlagBody, "", "")
	fs.StringVar(&cfg.bodyPath, FlagBodyShort, "", "")
	fs.StringVar(&cfg.contentType, FlagContentType, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.url == "" {
		return nil, errors.New(ErrMsgMissingURL)
	}
	for _, f := range []string{cfg.canonical, cfg.force} {
		if f == "" {
			continue
		}
		if _, ok := renderctx.ParseFormat(f); !ok {
			return nil, errors.New(ErrMsgUnknownResponse)
		}
	}
	if err := validateOutputFormat(cfg.format); err != nil {
		return nil, err
	}

	return cfg, nil
}
