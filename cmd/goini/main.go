package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	goini "github.com/reoring/goini"
	"github.com/reoring/goini/i18n"
	"github.com/reoring/goini/schemafile"
)

// errUsage makes run exit with status 2; any other error exits with 1.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fatalf("%v", err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		usage(stderr)
		return errUsage
	}
	rest := args[1:]
	switch args[0] {
	case "decode":
		return decodeCmd(rest, stdin, stdout, stderr)
	case "encode":
		return encodeCmd(rest, stdin, stdout, stderr)
	case "classify":
		return classifyCmd(rest, stdin, stdout)
	case "jsonschema":
		return jsonSchemaCmd(rest, stdout, stderr)
	default:
		usage(stderr)
		return errUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "goini CLI\n\nUsage:\n  goini decode -schema schema.yaml [-strict] [-duplicates last|first|error] [-empty unset|absent|string] [-collect] [-lang en|ja] [-v] [input.ini]\n  goini encode -schema schema.yaml [-empty-optional] [input.json]\n  goini classify [TOKEN...]\n  goini jsonschema -schema schema.yaml\n\nNotes:\n  - decode prints the record as JSON; encode reads a JSON object.\n  - classify reads one token per line from stdin when no TOKEN is given.")
}

func decodeCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var schemaPath, dups, empty, lang string
	var strict, collect, verbose bool
	fs.StringVar(&schemaPath, "schema", "", "schema file (YAML or JSON)")
	fs.BoolVar(&strict, "strict", false, "report keys the schema does not name")
	fs.StringVar(&dups, "duplicates", "last", "repeated keys: last, first or error")
	fs.StringVar(&empty, "empty", "unset", "keys without a value: unset, absent or string")
	fs.BoolVar(&collect, "collect", false, "report every issue instead of the first")
	fs.StringVar(&lang, "lang", "en", "message language (en, ja)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil || schemaPath == "" || fs.NArg() > 1 {
		fs.Usage()
		return errUsage
	}

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(stderr, format+"\n", a...)
		}
	}

	opt := goini.DecodeOpt{CollectAll: collect}
	if strict {
		opt.Unknown = goini.UnknownStrict
	}
	switch dups {
	case "last":
	case "first":
		opt.Duplicates = goini.DuplicateFirstWins
	case "error":
		opt.Duplicates = goini.DuplicateError
	default:
		fmt.Fprintf(stderr, "decode: unknown -duplicates %q\n", dups)
		return errUsage
	}
	switch empty {
	case "unset":
	case "absent":
		opt.EmptyValue = goini.EmptyAbsent
	case "string":
		opt.EmptyValue = goini.EmptyString
	default:
		fmt.Fprintf(stderr, "decode: unknown -empty %q\n", empty)
		return errUsage
	}
	i18n.SetLanguage(lang)
	defer i18n.SetLanguage("en")

	s, err := schemafile.LoadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	logf("decode: schema=%s fields=%d opts=%+v", schemaPath, s.Len(), opt)

	text, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	r, err := goini.Decode(string(text), s, opt)
	if err != nil {
		if iss, ok := goini.AsIssues(err); ok {
			printIssues(stderr, iss)
			return fmt.Errorf("decode: %d issue(s)", len(iss))
		}
		return err
	}
	logf("decode: %d field(s) set", countSet(r))
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering JSON: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func encodeCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var schemaPath string
	var emptyOptional bool
	fs.StringVar(&schemaPath, "schema", "", "schema file (YAML or JSON)")
	fs.BoolVar(&emptyOptional, "empty-optional", false, "write `name =` for optional fields without a value")
	if err := fs.Parse(args); err != nil || schemaPath == "" || fs.NArg() > 1 {
		fs.Usage()
		return errUsage
	}
	s, err := schemafile.LoadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	data, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	r, err := goini.RecordFromJSON(data, s)
	if err != nil {
		if iss, ok := goini.AsIssues(err); ok {
			printIssues(stderr, iss)
		}
		return fmt.Errorf("encode: %w", err)
	}
	text, err := goini.Encode(r, s, goini.EncodeOpt{EmptyOptional: emptyOptional})
	if err != nil {
		if iss, ok := goini.AsIssues(err); ok {
			printIssues(stderr, iss)
		}
		return fmt.Errorf("encode: %w", err)
	}
	_, err = fmt.Fprintln(stdout, text)
	return err
}

// classifyCmd prints `kind<TAB>canonical` per token, or `error<TAB>message`.
func classifyCmd(args []string, stdin io.Reader, stdout io.Writer) error {
	tokens := args
	if len(tokens) == 0 {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			tokens = append(tokens, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading tokens: %w", err)
		}
	}
	failed := 0
	for _, tok := range tokens {
		v, err := goini.ParseValue(tok)
		if err != nil {
			failed++
			msg := err.Error()
			if iss, ok := goini.AsIssues(err); ok {
				msg = iss[0].Message
			}
			fmt.Fprintf(stdout, "error\t%s\n", msg)
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", v.Kind(), v)
	}
	if failed > 0 {
		return fmt.Errorf("classify: %d token(s) rejected", failed)
	}
	return nil
}

func jsonSchemaCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("jsonschema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema file (YAML or JSON)")
	if err := fs.Parse(args); err != nil || schemaPath == "" {
		fs.Usage()
		return errUsage
	}
	s, err := schemafile.LoadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	out, err := json.MarshalIndent(s.JSONSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("rendering JSON: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func printIssues(w io.Writer, iss goini.Issues) {
	for _, it := range iss {
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s", it.Path, it.Message)
		if it.Line > 0 {
			fmt.Fprintf(&b, " (line %d)", it.Line)
		}
		if it.Hint != "" {
			fmt.Fprintf(&b, " [%s]", it.Hint)
		}
		fmt.Fprintln(w, b.String())
	}
}

func countSet(r *goini.Record) int {
	n := 0
	for range r.All() {
		n++
	}
	return n
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
