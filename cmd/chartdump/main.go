package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/yamitzky/xlchart-go/chart"
	"github.com/yamitzky/xlchart-go/chart/charttype"
	"github.com/yamitzky/xlchart-go/chart/ooxml"
	"github.com/yamitzky/xlchart-go/workbook"
)

var version = "dev"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type options struct {
	ooxml     bool
	json      bool
	strict    bool
	verbosity int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "show version",
	}
	app := cli.NewApp()
	app.Name = "chartdump"
	app.Usage = "Dump the charts of raw BIFF8 workbook streams"
	app.ArgsUsage = "input [input ...]"
	app.Version = version
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Reader = stdin
	app.HideHelpCommand = true
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "ooxml",
			Usage: "print every chart as OOXML chart markup",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print a JSON listing of every chart and its records",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "fail on the first record that does not decode",
		},
		&cli.IntFlag{
			Name:    "verbosity",
			Aliases: []string{"v"},
			Usage:   "diagnostics written to stderr: 1 decode faults, 2 record trace",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			_ = cli.ShowAppHelp(ctx)
			return cli.Exit("", 2)
		}
		opts := options{
			ooxml:     ctx.Bool("ooxml"),
			json:      ctx.Bool("json"),
			strict:    ctx.Bool("strict"),
			verbosity: ctx.Int("verbosity"),
		}
		if opts.ooxml && opts.json {
			return cli.Exit("cannot combine --ooxml with --json", 2)
		}
		for _, input := range ctx.Args().Slice() {
			if err := dumpPath(input, stdin, opts, stdout, stderr); err != nil {
				return cli.Exit(err.Error(), 1)
			}
		}
		return nil
	}
	return app
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp(stdin, stdout, stderr)
	err := app.Run(append([]string{"chartdump"}, args...))
	if err == nil {
		return 0
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return ec.ExitCode()
	}
	fmt.Fprintln(stderr, err)
	return 2
}

func dumpPath(input string, stdin io.Reader, opts options, stdout, stderr io.Writer) error {
	if input == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "failed to read stdin")
		}
		return writeBuffered(stdout, stderr, func(out, log io.Writer) error {
			return dumpContent("-", content, opts, out, log)
		})
	}
	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return dumpDir(input, opts, stdout, stderr)
	}
	return writeBuffered(stdout, stderr, func(out, log io.Writer) error {
		return dumpFile(input, opts, out, log)
	})
}

func writeBuffered(stdout, stderr io.Writer, fn func(out, log io.Writer) error) error {
	writer := bufio.NewWriter(stdout)
	if err := fn(writer, stderr); err != nil {
		writer.Flush()
		return err
	}
	return writer.Flush()
}

// dumpDir dumps every raw workbook stream in dir. Files are parsed in
// parallel, each into its own buffers, and written out in name order.
func dumpDir(dir string, opts options, stdout, stderr io.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	outs := make([]bytes.Buffer, len(paths))
	logs := make([]bytes.Buffer, len(paths))
	skipped := make([]bool, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if workbook.InspectFormat(content) != "biff" {
				skipped[i] = true
				return nil
			}
			return dumpContent(path, content, opts, &outs[i], &logs[i])
		})
	}
	err = g.Wait()

	found := false
	for i := range paths {
		if skipped[i] {
			continue
		}
		found = true
		if _, werr := logs[i].WriteTo(stderr); werr != nil && err == nil {
			err = werr
		}
		if _, werr := outs[i].WriteTo(stdout); werr != nil && err == nil {
			err = werr
		}
	}
	if err != nil {
		return err
	}
	if !found {
		return errors.Errorf("no workbook streams found in %s", dir)
	}
	return nil
}

func dumpFile(path string, opts options, out, log io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return dumpContent(path, content, opts, out, log)
}

func dumpContent(name string, content []byte, opts options, out, log io.Writer) error {
	book, err := workbook.Open(content, &workbook.Options{
		Logfile:   log,
		Verbosity: opts.verbosity,
		Strict:    opts.strict,
	})
	if err != nil {
		return errors.Wrap(err, name)
	}
	defer book.Close()

	switch {
	case opts.json:
		return writeJSON(out, name, book)
	case opts.ooxml:
		return writeOOXML(out, name, book)
	}
	return writeRecords(out, name, len(content), book)
}

func writeRecords(w io.Writer, name string, size int, book *workbook.Book) error {
	fmt.Fprintf(w, "%s: %s, %d sheets, %d charts\n", name, humanize.Bytes(uint64(size)), len(book.Sheets), len(book.Charts))
	for _, c := range book.Charts {
		records := c.RecordArray()
		b, err := c.Bytes()
		if err != nil {
			return errors.Wrapf(err, "%s: chart %q", name, c.Name)
		}
		fmt.Fprintf(w, "\n== %s (%s) at offset %d: %d records, %s\n", c.Name, familyNames(c.Chart), c.Offset, len(records), humanize.Bytes(uint64(len(b))))
		depth := 0
		for _, r := range records {
			if r.Opcode() == chart.OpEnd {
				depth--
			}
			fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", max(depth, 0)), describe(r))
			if r.Opcode() == chart.OpBegin {
				depth++
			}
		}
	}
	return nil
}

// describe formats one record as its name, payload length and up to 16
// payload bytes in hex.
func describe(r chart.Record) string {
	data := r.Data()
	if len(data) == 0 {
		return chart.Name(r.Opcode())
	}
	shown := data
	more := ""
	if len(shown) > 16 {
		shown, more = shown[:16], " ..."
	}
	return fmt.Sprintf("%s [%d] % x%s", chart.Name(r.Opcode()), len(data), shown, more)
}

func familyNames(c *chart.Chart) string {
	families, err := charttype.Families(c)
	if err != nil || len(families) == 0 {
		return "no chart group"
	}
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.ElementName()
	}
	return strings.Join(names, "+")
}

func writeOOXML(w io.Writer, name string, book *workbook.Book) error {
	for _, c := range book.Charts {
		b, err := ooxml.Marshal(c.Chart)
		if err != nil {
			return errors.Wrapf(err, "%s: chart %q", name, c.Name)
		}
		fmt.Fprintf(w, "<!-- %s: %s -->\n", name, c.Name)
		w.Write(b)
		fmt.Fprintln(w)
	}
	return nil
}

type jsonBook struct {
	File     string      `json:"file"`
	Codepage int         `json:"codepage,omitempty"`
	UserName string      `json:"userName,omitempty"`
	Fonts    int         `json:"fonts"`
	Sheets   []string    `json:"sheets"`
	Charts   []jsonChart `json:"charts"`
}

type jsonChart struct {
	Name    string       `json:"name"`
	Sheet   string       `json:"sheet,omitempty"`
	Offset  int          `json:"offset"`
	Groups  []string     `json:"groups"`
	Title   string       `json:"title,omitempty"`
	Series  int          `json:"series"`
	Records []jsonRecord `json:"records"`
	Opaque  int          `json:"opaque"`
}

type jsonRecord struct {
	Opcode string `json:"opcode"`
	Name   string `json:"name"`
	Length int    `json:"length"`
	Depth  int    `json:"depth"`
}

func writeJSON(w io.Writer, name string, book *workbook.Book) error {
	doc := jsonBook{
		File:     name,
		UserName: book.UserName,
		Fonts:    book.NumFonts(),
		Sheets:   book.SheetNames(),
		Charts:   []jsonChart{},
	}
	if book.Codepage != nil {
		doc.Codepage = *book.Codepage
	}
	for _, c := range book.Charts {
		jc := jsonChart{
			Name:   c.Name,
			Sheet:  c.Sheet,
			Offset: c.Offset,
			Groups: []string{},
			Series: len(c.Series()),
		}
		if families, err := charttype.Families(c.Chart); err == nil {
			for _, f := range families {
				jc.Groups = append(jc.Groups, f.ElementName())
			}
		}
		if v, ok := c.ChartOption("Title"); ok {
			jc.Title = v
		}
		chart.Walk(c.Records(), func(r chart.Record, depth int) bool {
			if _, ok := r.(*chart.Unknown); ok {
				jc.Opaque++
			}
			jc.Records = append(jc.Records, jsonRecord{
				Opcode: fmt.Sprintf("0x%04X", r.Opcode()),
				Name:   chart.Name(r.Opcode()),
				Length: len(r.Data()),
				Depth:  depth,
			})
			return true
		})
		doc.Charts = append(doc.Charts, jc)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
