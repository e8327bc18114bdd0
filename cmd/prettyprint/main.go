// Command prettyprint reads single-line nested structures, such as debug
// dumps or log fields shaped like Foo(Bar(), Baz=[1, 2]), and rewrites
// each line as an indented, width-bounded rendering. Input that does not
// parse passes through unchanged.
package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/funkwerk/prettyprint"
)

const defaultAcceptHeader = "text/plain, */*"

const httpTimeout = 30 * time.Second

func main() {
	width := pflag.IntP("width", "w", 0, "column width (0 = detect terminal width, fallback 80)")
	indent := pflag.String("indent", "    ", "indentation unit")
	palette := pflag.String("palette", "default", "color palette, see --list-palettes")
	noColor := pflag.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	listPalettes := pflag.Bool("list-palettes", false, "list available palettes and exit")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file|url|-]...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reads standard input when no arguments are given.\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *listPalettes {
		fmt.Println(strings.Join(prettyprint.PaletteNames(), "\n"))
		return
	}

	opts := prettyprint.Options{
		Width:   *width,
		Indent:  *indent,
		Palette: *palette,
	}
	if opts.Width <= 0 {
		opts.Width = terminalWidth()
	}
	if *noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		opts.Palette = "none"
	}

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := formatInput(os.Stdout, arg, &opts); err != nil {
			fmt.Fprintf(os.Stderr, "prettyprint: %v\n", err)
			os.Exit(1)
		}
	}
}

// terminalWidth returns the stdout terminal width, or 80 when none can be
// determined.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func formatInput(w io.Writer, arg string, opts *prettyprint.Options) error {
	r, closer, err := openInput(arg)
	if err != nil {
		return err
	}
	defer closer.Close()
	if err := prettyprint.FormatStream(w, r, opts); err != nil {
		return fmt.Errorf("%s: %w", arg, err)
	}
	return nil
}

func openInput(arg string) (io.Reader, io.Closer, error) {
	if arg == "-" {
		return os.Stdin, io.NopCloser(nil), nil
	}
	if u, isURL, err := parseHTTPURL(arg); err != nil {
		return nil, nil, err
	} else if isURL {
		return openURL(u, urlOptions{accept: defaultAcceptHeader})
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// parseHTTPURL reports whether arg names an http or https resource. A plain
// file path returns isURL false with no error.
func parseHTTPURL(arg string) (*url.URL, bool, error) {
	if !strings.HasPrefix(arg, "http://") && !strings.HasPrefix(arg, "https://") {
		return nil, false, nil
	}
	u, err := url.Parse(arg)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", arg, err)
	}
	return u, true, nil
}

type urlOptions struct {
	accept string
}

func openURL(u *url.URL, opts urlOptions) (io.Reader, io.Closer, error) {
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, nil, err
	}
	if opts.accept == "" {
		opts.accept = defaultAcceptHeader
	}
	req.Header.Set("Accept", opts.accept)

	client := &http.Client{Timeout: httpTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, nil, fmt.Errorf("%s: unexpected status %s", u, resp.Status)
	}
	return resp.Body, resp.Body, nil
}
