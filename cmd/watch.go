package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/tpsify/tpsify/internal/config"
	"github.com/tpsify/tpsify/internal/convert"
	"github.com/tpsify/tpsify/internal/feed"
	"github.com/tpsify/tpsify/internal/ui"
	"github.com/tpsify/tpsify/internal/util"
)

var (
	flagWatchURL       string
	flagWatchInterval  string
	flagWatchDebounce  string
	flagWatchMaxPasses int
	flagWatchOutput    string
)

func init() {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll a live page and reconvert WPM stats as they change",
		RunE:  runWatch,
	}

	watchCmd.Flags().StringVar(&flagWatchURL, "url", "", "page URL to watch")
	watchCmd.Flags().StringVar(&flagWatchInterval, "interval", "", "poll interval (e.g. 2s)")
	watchCmd.Flags().StringVar(&flagWatchDebounce, "debounce", "", "debounce window for bursts of changes (e.g. 400ms)")
	watchCmd.Flags().IntVar(&flagWatchMaxPasses, "max-passes", 0, "stop after this many polls (0 = until interrupted)")
	watchCmd.Flags().StringVar(&flagWatchOutput, "output", "", "folder for per-pass HTML snapshots (empty = don't write)")

	rootCmd.AddCommand(watchCmd)
}

// page pairs a fetched document with the converter holding its element
// marks. A fresh fetch is a fresh DOM: old marks die with the old nodes.
type page struct {
	doc  *goquery.Document
	conv *convert.Converter
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Output:       flagWatchOutput,
		Interval:     flagWatchInterval,
		Debounce:     flagWatchDebounce,
		MaxPasses:    flagWatchMaxPasses,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Printf("Config file: %s\n", usedPath)
	}

	if flagWatchURL == "" {
		return fmt.Errorf("missing --url")
	}

	u, err := url.Parse(flagWatchURL)
	if err != nil {
		return fmt.Errorf("bad --url: %w", err)
	}
	host := u.Hostname()

	pat, ok := cfg.Sites.Resolve(host)
	if !ok {
		return fmt.Errorf("no pattern configured for host %s", host)
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
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	util.SetupInterruptHandler(cancel)

	view := ui.NewSessionView(host)
	stats := &ui.Stats{}
	start := time.Now()

	var (
		mu      sync.Mutex
		passMu  sync.Mutex
		cur     *page
		passNum int
	)

	runPass := func() {
		passMu.Lock()
		defer passMu.Unlock()

		mu.Lock()
		p := cur
		mu.Unlock()
		if p == nil {
			return
		}

		n := p.conv.Run(p.doc, host)
		stats.TotalPasses.Add(1)
		stats.TotalRewrites.Add(int64(n))
		view.Pass(n)

		if n == 0 || cfg.Output == "" {
			return
		}

		passNum++
		out := util.SnapshotPath(cfg.Output, passNum)
		markup, err := p.doc.Html()
		if err != nil {
			logSvc.Errorf("render: %v\n", err)
			return
		}
		if err := util.WriteHTML(out, markup); err != nil {
			logSvc.Errorf("snapshot %s: %v\n", out, err)
		}
	}

	watcher := feed.NewWatcher(pat.Watch, cfg.DebounceWindow(), 0, runPass)

	fetch := func() (*goquery.Document, int64, error) {
		req, err := http.NewRequestWithContext(ctx, "GET", flagWatchURL, nil)
		if err != nil {
			return nil, 0, err
		}

		resp, err := util.DoWithRetry(client, req, 3, 500*time.Millisecond)
		if err != nil {
			return nil, 0, err
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, 0, err
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		return doc, int64(len(body)), err
	}

	interval := cfg.PollInterval()
	var prev feed.Snapshot
	first := true

loop:
	for i := 0; cfg.MaxPasses <= 0 || i < cfg.MaxPasses; i++ {
		doc, nbytes, err := fetch()
		switch {
		case err != nil && ctx.Err() != nil:
			break loop
		case err != nil:
			logSvc.Errorf("fetch: %v\n", err)
		default:
			stats.TotalBytes.Add(nbytes)
			view.AddBytes(nbytes)

			snap := feed.Take(doc, pat.Watch)

			mu.Lock()
			cur = &page{doc: doc, conv: convert.New(cfg.Sites, cfg.LabelColor, logSvc)}
			mu.Unlock()

			if first {
				// DOM ready: convert immediately, don't wait for changes.
				first = false
				runPass()
			} else {
				watcher.Offer(feed.Diff(prev, snap))
			}
			prev = snap
		}

		select {
		case <-ctx.Done():
			break loop
		case <-time.After(interval):
		}
	}

	watcher.Flush()
	view.Close()

	fmt.Println()
	fmt.Println("Watch Summary:")
	fmt.Printf("Passes:   %d\n", stats.TotalPasses.Load())
	fmt.Printf("Rewrites: %d\n", stats.TotalRewrites.Load())
	fmt.Printf("Data:     %s\n", util.Human(stats.TotalBytes.Load()))
	fmt.Printf("Time:     %s\n", time.Since(start).Round(time.Second))

	return nil
}
