// Command imgfetch fetches a single image over HTTP(S) and saves it into a
// local directory under a derived, collision-safe filename.
//
// The tool is interactive: it prompts once for a URL on standard input,
// attempts one download, prints the outcome, and exits. Success and failure
// are communicated through printed text only.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/imgfetch/imgfetch/internal/config"
	"github.com/imgfetch/imgfetch/internal/fetcher"
	"github.com/imgfetch/imgfetch/internal/httpclient"
	"github.com/imgfetch/imgfetch/internal/progress"
	"github.com/imgfetch/imgfetch/internal/store"
)

func main() {
	// An interrupt during the prompt or the download produces a goodbye
	// line, not a stack trace.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nOperation cancelled by user. Goodbye!")
		os.Exit(0)
	}()

	run(os.Stdin, os.Stdout, config.Default())
}

// run drives one interactive fetch. The console boundary lives here so the
// fetch pipeline stays testable without simulating standard input.
func run(in io.Reader, out io.Writer, cfg config.Config) {
	rep := progress.NewReporter(out)

	defer func() {
		if r := recover(); r != nil {
			rep.Errorf("%s: %v", fetcher.KindUnexpected, r)
		}
	}()

	banner(out)

	if err := cfg.Validate(); err != nil {
		rep.Errorf("Invalid configuration: %v", err)
		return
	}

	st, err := store.Open(cfg.Directory)
	if err != nil {
		if errors.Is(err, store.ErrPermission) {
			rep.Errorf("Permission denied: cannot create directory")
		} else {
			rep.Errorf("Error creating directory: %v", err)
		}
		return
	}
	defer st.Close()

	rep.Readyf("Directory %q is ready", st.Dir())

	fmt.Fprint(out, "Please enter the image URL: ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		fmt.Fprintln(out, "\nNo input provided. Exiting.")
		return
	}
	url := strings.TrimSpace(scanner.Text())
	if url == "" {
		rep.Errorf("No URL provided. Exiting.")
		return
	}

	client := httpclient.NewClient(httpclient.Options{Timeout: cfg.Timeout})

	result, err := fetcher.Fetch(context.Background(), url, st, fetcher.Options{
		Client:    client,
		Reporter:  rep,
		ChunkSize: int(cfg.ChunkSize),
	})
	if err != nil {
		reportFailure(rep, err)
		rep.Errorf("Download failed. Please check the URL and try again.")
		return
	}

	rep.Successf("Successfully saved: %s (%s)", result.Filename, progress.FormatBytes(result.Size))
	rep.Infof("Location: %s", result.Path)
	rep.Successf("Download completed successfully!")
}

// reportFailure renders a fetch failure as a defensive console message.
func reportFailure(rep *progress.Reporter, err error) {
	var ferr *fetcher.Error
	if !errors.As(err, &ferr) {
		rep.Errorf("Unexpected error: %v", err)
		return
	}

	switch ferr.Kind {
	case fetcher.KindInvalidURL:
		rep.Errorf("Invalid URL: must start with http:// or https://")
	case fetcher.KindHTTP:
		var statusErr *httpclient.StatusError
		if errors.As(ferr.Err, &statusErr) {
			rep.Errorf("HTTP error: %s", statusErr.Status)
		} else {
			rep.Errorf("HTTP error: %v", ferr.Err)
		}
	case fetcher.KindConnection:
		rep.Errorf("Connection error: unable to connect to the server")
	case fetcher.KindTimeout:
		rep.Errorf("Timeout error: request took too long")
	case fetcher.KindRequest:
		rep.Errorf("Request error: %v", ferr.Err)
	case fetcher.KindWrite:
		if errors.Is(ferr.Err, store.ErrPermission) {
			rep.Errorf("Permission denied: cannot write to file")
		} else {
			rep.Errorf("Write error: %v", ferr.Err)
		}
	default:
		rep.Errorf("Unexpected error: %v", ferr.Err)
	}
}

func banner(out io.Writer) {
	line := strings.Repeat("=", 50)
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, "Image Fetcher")
	fmt.Fprintln(out, line)
}
