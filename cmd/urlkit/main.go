// Command urlkit parses, encodes and decodes URLs.
//
// Usage:
//
//   urlkit parse [--json] [--match=GLOB] [--unique] [URL...]
//   urlkit encode [TEXT...]
//   urlkit decode [--strict] [TEXT...]
//   urlkit extract [--selector=SEL] [FILE]
//
// When no arguments are given, input is read from stdin
// one item per line.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/tj/kingpin"
	"github.com/yields/urlkit"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Command represents a parsed command line.
type command struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	log    log.Interface
}

// Run runs the command with args and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var app = kingpin.New("urlkit", "Parse, encode and decode URLs.")
	var verbose = app.Flag("verbose", "Enable debug logs.").Short('v').Bool()

	var parse = app.Command("parse", "Print the canonical form of URLs.")
	var parseJSON = parse.Flag("json", "Print components as JSON lines.").Bool()
	var parseMatch = parse.Flag("match", "Only print URLs matching the glob pattern.").String()
	var parseUnique = parse.Flag("unique", "Skip URLs that were already printed.").Bool()
	var parseArgs = parse.Arg("url", "URLs to parse.").Strings()

	var encode = app.Command("encode", "Percent-encode text.")
	var encodeArgs = encode.Arg("text", "Text to encode.").Strings()

	var decode = app.Command("decode", "Percent-decode text.")
	var decodeStrict = decode.Flag("strict", "Fail on invalid escapes.").Bool()
	var decodeArgs = decode.Arg("text", "Text to decode.").Strings()

	var extract = app.Command("extract", "Print URLs linked from an HTML document.")
	var extractSelector = extract.Flag("selector", "CSS selector of links.").Default(urlkit.DefaultSelector).String()
	var extractFile = extract.Arg("file", "HTML file, defaults to stdin.").String()

	var logger = &log.Logger{
		Handler: cli.New(stderr),
		Level:   log.InfoLevel,
	}

	cmd, err := app.Parse(args)
	if err != nil {
		logger.WithError(err).Error("invalid arguments")
		return 2
	}

	if *verbose {
		logger.Level = log.DebugLevel
	}

	var c = &command{
		ctx:    context.Background(),
		stdin:  stdin,
		stdout: stdout,
		log:    logger,
	}

	switch cmd {
	case parse.FullCommand():
		err = c.parse(*parseArgs, *parseJSON, *parseMatch, *parseUnique)
	case encode.FullCommand():
		err = c.encode(*encodeArgs)
	case decode.FullCommand():
		err = c.decode(*decodeArgs, *decodeStrict)
	case extract.FullCommand():
		err = c.extract(*extractFile, *extractSelector)
	}

	if err != nil {
		logger.WithError(err).Error(cmd)
		return 1
	}

	return 0
}

// ErrMalformedInput is returned when some of the input was malformed.
var errMalformedInput = errors.New("urlkit: some input was malformed")

// Parse implements the parse command.
func (c *command) parse(args []string, asJSON bool, pattern string, unique bool) error {
	var parser = urlkit.NewParser(urlkit.ParserConfig{Logger: c.log})
	var deduper = urlkit.DedupeMap()
	var enc = json.NewEncoder(c.stdout)
	var failed bool

	enc.SetEscapeHTML(false)

	lines, err := c.lines(args)
	if err != nil {
		return err
	}

	for _, line := range lines {
		u, err := parser.Parse(line)
		if err != nil {
			c.log.WithError(err).Warn("skip")
			failed = true
			continue
		}

		if pattern != "" && !urlkit.MatchPattern(pattern).Match(u) {
			continue
		}

		if unique {
			next, err := deduper.Dedupe(c.ctx, []*urlkit.URL{u})
			if err != nil {
				return err
			}
			if len(next) == 0 {
				continue
			}
		}

		if asJSON {
			if err := enc.Encode(componentsOf(u)); err != nil {
				return fmt.Errorf("urlkit: json encode - %w", err)
			}
			continue
		}

		if _, err := fmt.Fprintln(c.stdout, u); err != nil {
			return err
		}
	}

	if failed {
		return errMalformedInput
	}

	return nil
}

// Encode implements the encode command.
func (c *command) encode(args []string) error {
	lines, err := c.lines(args)
	if err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(c.stdout, urlkit.EncodeString(line)); err != nil {
			return err
		}
	}

	return nil
}

// Decode implements the decode command.
func (c *command) decode(args []string, strict bool) error {
	lines, err := c.lines(args)
	if err != nil {
		return err
	}

	for _, line := range lines {
		var b []byte

		if strict {
			if b, err = urlkit.DecodeStrict(line); err != nil {
				return fmt.Errorf("urlkit: decode %q - %w", line, err)
			}
		} else {
			b = urlkit.Decode(line)
		}

		if _, err := fmt.Fprintf(c.stdout, "%s\n", b); err != nil {
			return err
		}
	}

	return nil
}

// Extract implements the extract command.
func (c *command) extract(file, selector string) error {
	var r = c.stdin

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	urls, err := urlkit.Extract(r, selector)
	if err != nil {
		return err
	}

	c.log.WithField("count", len(urls)).Debug("extracted")

	for _, u := range urls {
		if _, err := fmt.Fprintln(c.stdout, u); err != nil {
			return err
		}
	}

	return nil
}

// Lines returns args, or all lines of stdin when
// no args are given.
func (c *command) lines(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var ret []string
	var scanner = bufio.NewScanner(c.stdin)

	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			ret = append(ret, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("urlkit: read stdin - %w", err)
	}

	return ret, nil
}

// Components is the JSON form of a URL.
type components struct {
	URL      string  `json:"url"`
	Protocol string  `json:"protocol"`
	Username string  `json:"username,omitempty"`
	Password string  `json:"password,omitempty"`
	Host     string  `json:"host"`
	Port     int     `json:"port"`
	Path     string  `json:"path,omitempty"`
	Params   []param `json:"params,omitempty"`
}

// Param is the JSON form of a query param.
type param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ComponentsOf returns the components of u.
func componentsOf(u *urlkit.URL) components {
	var ret = components{
		URL:      u.String(),
		Protocol: u.Protocol(),
		Username: u.Username(),
		Password: u.Password(),
		Host:     u.Host(),
		Port:     u.Port(),
		Path:     u.Path(),
	}

	u.Params().Range(func(k, v string) bool {
		ret.Params = append(ret.Params, param{Key: k, Value: v})
		return true
	})

	return ret
}
