// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command stegctl encodes, decodes and inspects text offline.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	cli "github.com/urfave/cli/v2"

	"github.com/danielhkuo/codevault/stego"
)

// Set through -ldflags "-X main.version=..."
var version = "master"

var (
	fillersFlag = &cli.StringFlag{
		Name:    "fillers",
		Usage:   "TOML file with filler lines and words",
		EnvVars: []string{"FILLER_FILE"},
	}
	methodFlag = &cli.StringFlag{
		Name:    "method",
		Aliases: []string{"m"},
		Usage:   "els, acrostic, punctuation or null-cipher",
	}
	textFlag = &cli.StringFlag{
		Name:    "text",
		Aliases: []string{"t"},
		Usage:   "Text to work on",
	}
	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Read the text from a file, - for stdin",
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print JSON instead of plain text",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "stegctl",
		Version:  version,
		Usage:    "hide and find messages in ordinary text",
		Flags:    []cli.Flag{fillersFlag},
		Commands: []*cli.Command{encodeCmd, decodeCmd, detectCmd, analyzeCmd, checkCmd},
	}
}

var encodeCmd = &cli.Command{
	Name:  "encode",
	Usage: "hide a message in carrier text",
	Flags: []cli.Flag{
		methodFlag, textFlag, fileFlag, jsonFlag,
		&cli.StringFlag{Name: "message", Usage: "Message to hide", Required: true},
		&cli.StringFlag{Name: "level", Usage: "light, medium or heavy (ELS spacing)", Value: "medium"},
	},
	Action: func(c *cli.Context) error {
		method, err := stego.ParseMethod(c.String(methodFlag.Name), false)
		if err != nil {
			return err
		}
		carrier, err := readText(c)
		if err != nil {
			return err
		}
		fillers, err := loadFillers(c)
		if err != nil {
			return err
		}

		message := c.String("message")
		res, err := stego.Encode(method, message, carrier, stego.Params{
			Level:   stego.Level(c.String("level")),
			Fillers: fillers,
		})
		if err != nil {
			return err
		}
		security := stego.Assess(method, message, carrier, res.Positions)

		if c.Bool(jsonFlag.Name) {
			return printJSON(c.App.Writer, map[string]interface{}{
				"result":   res,
				"security": security,
			})
		}
		fmt.Fprintln(c.App.Writer, res.EncodedText)
		fmt.Fprintf(c.App.ErrWriter, "%s, security %d/100, risk %s\n", res.MethodName, res.SecurityScore, security.DetectionRisk)
		fmt.Fprintf(c.App.ErrWriter, "decode with: %s\n", instructionFlags(res.Instructions))
		return nil
	},
}

// instructionFlags renders in as the decode flags that reproduce it
func instructionFlags(in stego.Instructions) string {
	parts := []string{"--method " + string(in.Method)}
	switch in.Method {
	case stego.MethodELS:
		parts = append(parts,
			fmt.Sprintf("--skip %d", in.SkipDistance),
			fmt.Sprintf("--start %d", in.StartPosition),
			fmt.Sprintf("--length %d", in.MessageLength))
	case stego.MethodAcrostic:
		parts = append(parts, fmt.Sprintf("--lines %d", in.NumberOfLines))
	case stego.MethodPunctuation:
		parts = append(parts, fmt.Sprintf("--bits %d", in.BinaryLength))
	case stego.MethodNullCipher:
		parts = append(parts, fmt.Sprintf("--words %d", in.NumberOfWords))
	}
	return strings.Join(parts, " ")
}

var instructionNames = []string{"skip", "start", "length", "lines", "words", "bits"}

var decodeCmd = &cli.Command{
	Name:  "decode",
	Usage: "extract a message, exactly when instructions are given and blindly otherwise",
	Flags: []cli.Flag{
		methodFlag, textFlag, fileFlag, jsonFlag,
		&cli.IntFlag{Name: "skip", Usage: "ELS skip distance"},
		&cli.IntFlag{Name: "start", Usage: "ELS start position"},
		&cli.IntFlag{Name: "length", Usage: "ELS message length"},
		&cli.IntFlag{Name: "lines", Usage: "acrostic line count"},
		&cli.IntFlag{Name: "words", Usage: "null cipher word count"},
		&cli.IntFlag{Name: "bits", Usage: "punctuation bit count"},
		&cli.IntFlag{Name: "limit", Usage: "maximum blind candidates", Value: stego.DefaultLimit},
	},
	Action: func(c *cli.Context) error {
		text, err := readText(c)
		if err != nil {
			return err
		}

		exact := false
		for _, name := range instructionNames {
			exact = exact || c.IsSet(name)
		}

		if exact {
			method, err := stego.ParseMethod(c.String(methodFlag.Name), false)
			if err != nil {
				return err
			}
			msg, err := stego.Decode(text, stego.Instructions{
				Method:        method,
				SkipDistance:  c.Int("skip"),
				StartPosition: c.Int("start"),
				MessageLength: c.Int("length"),
				NumberOfLines: c.Int("lines"),
				NumberOfWords: c.Int("words"),
				BinaryLength:  c.Int("bits"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, msg)
			return nil
		}

		method, err := stego.ParseMethod(c.String(methodFlag.Name), true)
		if err != nil {
			return err
		}
		analysis, err := stego.Analyze(text, method, stego.AnalyzeOptions{
			SkipDistance:  c.Int("skip"),
			StartPosition: c.Int("start"),
			Limit:         c.Int("limit"),
		})
		if err != nil {
			return err
		}
		if c.Bool(jsonFlag.Name) {
			return printJSON(c.App.Writer, analysis)
		}
		if d := analysis.Detection; d != nil {
			fmt.Fprintf(c.App.Writer, "detected: %s (%s)\n", detected(d.Method), d.Confidence)
		}
		if len(analysis.Candidates) == 0 {
			fmt.Fprintln(c.App.Writer, "no candidates found")
			return nil
		}
		for _, cand := range analysis.Candidates {
			fmt.Fprintf(c.App.Writer, "%5.1f  %-12s %s  (%s)\n", cand.Confidence, cand.Method, cand.Message, cand.Details)
		}
		return nil
	},
}

var detectCmd = &cli.Command{
	Name:  "detect",
	Usage: "guess which method was used on a text",
	Flags: []cli.Flag{textFlag, fileFlag, jsonFlag},
	Action: func(c *cli.Context) error {
		text, err := readText(c)
		if err != nil {
			return err
		}
		d := stego.Detect(text)
		if c.Bool(jsonFlag.Name) {
			return printJSON(c.App.Writer, d)
		}
		fmt.Fprintf(c.App.Writer, "method: %s\nconfidence: %s\n", detected(d.Method), d.Confidence)
		for _, m := range stego.Methods {
			fmt.Fprintf(c.App.Writer, "  %-12s %d\n", m, d.Tallies[m])
		}
		return nil
	},
}

var analyzeCmd = &cli.Command{
	Name:  "analyze",
	Usage: "profile a text as a carrier",
	Flags: []cli.Flag{textFlag, fileFlag, jsonFlag},
	Action: func(c *cli.Context) error {
		text, err := readText(c)
		if err != nil {
			return err
		}
		p := stego.Profile(text)
		if c.Bool(jsonFlag.Name) {
			return printJSON(c.App.Writer, p)
		}

		w := c.App.Writer
		s := p.Statistics
		fmt.Fprintf(w, "characters: %s\nwords: %s\nletters: %s\nsentences: %d\nlines: %d\n",
			humanize.Comma(int64(s.Characters)), humanize.Comma(int64(s.Words)),
			humanize.Comma(int64(s.Letters)), s.Sentences, s.Lines)
		fmt.Fprintln(w, "capacity:")
		for _, m := range []stego.Method{stego.MethodELS, stego.MethodAcrostic, stego.MethodPunctuation, stego.MethodNullCipher} {
			fmt.Fprintf(w, "  %-12s %s\n", m, humanize.Comma(int64(p.Capacity.For(m))))
		}

		letters := make([]string, 0, len(p.LetterFrequency))
		for l := range p.LetterFrequency {
			letters = append(letters, l)
		}
		sort.Slice(letters, func(i, j int) bool {
			return p.LetterFrequency[letters[i]] > p.LetterFrequency[letters[j]] ||
				p.LetterFrequency[letters[i]] == p.LetterFrequency[letters[j]] && letters[i] < letters[j]
		})
		if len(letters) > 5 {
			letters = letters[:5]
		}
		for i, l := range letters {
			letters[i] = fmt.Sprintf("%s %.1f%%", l, p.LetterFrequency[l])
		}
		fmt.Fprintf(w, "top letters: %s\n", strings.Join(letters, ", "))

		for _, r := range p.Recommendations {
			fmt.Fprintf(w, "- %s\n", r)
		}
		return nil
	},
}

var checkCmd = &cli.Command{
	Name:  "check",
	Usage: "rate a carrier for a message",
	Flags: []cli.Flag{
		methodFlag, textFlag, fileFlag, jsonFlag,
		&cli.StringFlag{Name: "message", Usage: "Message to hide", Required: true},
	},
	Action: func(c *cli.Context) error {
		method, err := stego.ParseMethod(c.String(methodFlag.Name), false)
		if err != nil {
			return err
		}
		carrier, err := readText(c)
		if err != nil {
			return err
		}
		s, err := stego.CheckCarrier(method, c.String("message"), carrier)
		if err != nil {
			return err
		}
		if c.Bool(jsonFlag.Name) {
			return printJSON(c.App.Writer, s)
		}
		verdict := "suitable"
		if !s.Suitable {
			verdict = "not suitable"
		}
		fmt.Fprintf(c.App.Writer, "%s (score %d/100)\n", verdict, s.Score)
		for _, warn := range s.Warnings {
			fmt.Fprintf(c.App.Writer, "! %s\n", warn)
		}
		for _, r := range s.Recommendations {
			fmt.Fprintf(c.App.Writer, "- %s\n", r)
		}
		return nil
	},
}

func readText(c *cli.Context) (string, error) {
	switch path := c.String(fileFlag.Name); {
	case c.IsSet(textFlag.Name):
		return c.String(textFlag.Name), nil
	case path == "-":
		b, err := io.ReadAll(c.App.Reader)
		return string(b), err
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(b), nil
	}
	return "", errors.New("one of --text or --file is required")
}

func loadFillers(c *cli.Context) (*stego.FillerPools, error) {
	path := c.String(fillersFlag.Name)
	if path == "" {
		return nil, nil
	}
	return stego.LoadFillerFile(path)
}

func detected(m stego.Method) string {
	if m == "" {
		return "none"
	}
	return string(m)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
