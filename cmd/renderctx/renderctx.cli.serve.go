package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/beevik/etree"
	"github.com/itsatony/go-renderctx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// serveConfig holds parsed serve command configuration
type serveConfig struct {
	addr       string
	configPath string
	debug      bool
	verbose    bool
}

// servePayload is the JSON body served for json requests
type servePayload struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

func runServe(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseServeFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	logger := zap.NewNop()
	if cfg.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgSetupFailed, err)
			return ExitCodeError
		}
		defer func() { _ = logger.Sync() }()
	}

	var opts []renderctx.Option
	if cfg.configPath != "" {
		fileCfg, err := renderctx.LoadConfigFile(cfg.configPath)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadConfigFailed, err)
			return ExitCodeInputError
		}
		opts = fileCfg.Options()
	}
	opts = append(opts, renderctx.WithLogger(logger))

	handler, err := newServeHandler(opts, renderctx.NewDebugger(cfg.debug, logger), prometheus.NewRegistry())
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgSetupFailed, err)
		return ExitCodeValidationError
	}

	srv := &http.Server{
		Addr:         cfg.addr,
		Handler:      handler,
		ReadTimeout:  ServeReadTimeout,
		WriteTimeout: ServeWriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	fmt.Fprintf(stdout, ServeListeningMsg, cfg.addr)

	select {
	case err := <-errChan:
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgServerFailed, err)
		return ExitCodeError
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ServeShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgServerFailed, err)
			return ExitCodeError
		}
		fmt.Fprintln(stdout, ServeStoppedMsg)
		return ExitCodeSuccess
	}
}

func parseServeFlags(args []string) (*serveConfig, error) {
	fs := flag.NewFlagSet(CmdNameServe, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &serveConfig{}

	fs.StringVar(&cfg.addr, FlagAddr, FlagDefaultAddr, "")
	fs.StringVar(&cfg.addr, FlagAddrShort, FlagDefaultAddr, "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.BoolVar(&cfg.debug, FlagDebug, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newServeHandler mounts the negotiating render handler on "/" and the
// metrics of reg on /metrics.
func newServeHandler(opts []renderctx.Option, debug *renderctx.Debugger, reg *prometheus.Registry) (http.Handler, error) {
	metrics, err := renderctx.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	mw, err := renderctx.NewMiddleware(renderHandler(debug), append(opts, renderctx.WithMetrics(metrics))...)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(ServeMetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle(ServeRootPath, mw)
	return mux, nil
}

// renderHandler answers with a minimal document in the negotiated format.
func renderHandler(debug *renderctx.Debugger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc, ok := renderctx.CurrentFrom(r.Context())
		req, hasReq := renderctx.RequestFrom(r.Context())
		if !ok || !hasReq {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		format, _ := req.ResponseFormat()
		path := req.URL(true)
		debug.Log(fmt.Sprintf(ServeDebugTemplate, rc, req.ResponseFormatSource()))

		if rc.Language() == renderctx.LanguageJSON {
			_ = json.NewEncoder(w).Encode(servePayload{Path: path, Format: string(format)})
			return
		}

		pre, err := rc.RenderPreContent()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		var b strings.Builder
		b.WriteString(pre)
		b.WriteString(debug.Comment(rc, fmt.Sprintf(ServeDebugTemplate, rc, req.ResponseFormatSource())))

		if rc.Language() == renderctx.LanguageXML {
			doc := etree.NewDocument()
			root := doc.CreateElement(ServeXMLRoot)
			root.CreateElement(ServeXMLPath).SetText(path)
			root.CreateElement(ServeXMLFormat).SetText(string(format))
			if _, err := doc.WriteTo(&b); err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		} else {
			note, _ := renderctx.NewNotification(html.EscapeString(path), renderctx.NotificationInformation)
			b.WriteString(note.Render(rc))
		}

		_, _ = io.WriteString(w, b.String())
	})
}
