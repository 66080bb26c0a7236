package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/tpsify/tpsify/internal/config"
	"github.com/tpsify/tpsify/internal/convert"
	"github.com/tpsify/tpsify/internal/ui"
	"github.com/tpsify/tpsify/internal/util"
)

var (
	flagConvertURL    string
	flagConvertInput  string
	flagConvertHost   string
	flagConvertOutput string
	flagConvertColor  string
	flagConvertDryRun bool
)

func init() {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Run one conversion pass over a page and write the rewritten HTML",
		RunE:  runConvert,
	}

	convertCmd.Flags().StringVar(&flagConvertURL, "url", "", "page URL to fetch and convert")
	convertCmd.Flags().StringVar(&flagConvertInput, "input", "", "HTML file to convert instead of fetching (\"-\" for stdin)")
	convertCmd.Flags().StringVar(&flagConvertHost, "host", "", "hostname for pattern resolution (required with --input, overrides --url)")
	convertCmd.Flags().StringVar(&flagConvertOutput, "output", "", "output file (default stdout)")
	convertCmd.Flags().StringVar(&flagConvertColor, "color", "", "label foreground color (e.g. #90EE90)")
	convertCmd.Flags().BoolVar(&flagConvertDryRun, "dry-run", false, "report the rewrite count, don't write output")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Output:       flagConvertOutput,
		LabelColor:   flagConvertColor,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("config loaded from %s\n", usedPath)

	if flagConvertURL == "" && flagConvertInput == "" {
		return fmt.Errorf("missing --url or --input")
	}

	doc, host, err := loadDocument(cfg, logSvc)
	if err != nil {
		return err
	}

	conv := convert.New(cfg.Sites, cfg.LabelColor, logSvc)
	n := conv.Run(doc, host)

	if flagConvertDryRun {
		fmt.Printf("Dry-run: %d elements would be rewritten on %s.\n", n, host)
		return nil
	}

	markup, err := doc.Html()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if cfg.Output == "" {
		fmt.Print(markup)
		return nil
	}

	if err := util.WriteHTML(cfg.Output, markup); err != nil {
		return err
	}

	logSvc.Infof("%d elements rewritten, output in %s\n", n, cfg.Output)
	return nil
}

func loadDocument(cfg *config.Config, logSvc *ui.Logger) (*goquery.Document, string, error) {
	if flagConvertInput != "" {
		if flagConvertHost == "" {
			return nil, "", fmt.Errorf("--input needs --host to resolve a site pattern")
		}

		in := os.Stdin
		if flagConvertInput != "-" {
			f, err := os.Open(flagConvertInput)
			if err != nil {
				return nil, "", err
			}
			defer func() {
				_ = f.Close()
			}()
			in = f
		}

		doc, err := goquery.NewDocumentFromReader(in)
		return doc, flagConvertHost, err
	}

	u, err := url.Parse(flagConvertURL)
	if err != nil {
		return nil, "", fmt.Errorf("bad --url: %w", err)
	}

	host := u.Hostname()
	if flagConvertHost != "" {
		host = flagConvertHost
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          30 * time.Second,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		BypassCloudflare: cfg.BypassCloudflare,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequest("GET", flagConvertURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := util.DoWithRetry(client, req, 3, 500*time.Millisecond)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	return doc, host, err
}
