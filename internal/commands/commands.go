package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gerunddev/wikidoc/internal/config"
	"github.com/gerunddev/wikidoc/internal/diff"
	"github.com/gerunddev/wikidoc/internal/index"
	"github.com/gerunddev/wikidoc/internal/logger"
	"github.com/gerunddev/wikidoc/internal/markdown"
	"github.com/gerunddev/wikidoc/internal/render"
	"github.com/gerunddev/wikidoc/internal/styles"
	"github.com/gerunddev/wikidoc/internal/tui"
)

// Parse prints a parsed note in the requested format
func Parse(args []string) {
	cfg, log, cleanup := setup()
	defer cleanup()

	opts, err := parseOptions(args, cfg)
	if err != nil {
		fail(err)
	}

	doc, err := readDocument(opts.input, os.Stdin)
	if err != nil {
		fail(err)
	}
	log.DocumentParsed(opts.inputName(), doc.Len(), len(doc.Links()))

	if opts.nest {
		doc = markdown.Nest(doc)
	}

	if err := render.Render(os.Stdout, doc, opts.format); err != nil {
		fail(err)
	}
}

// Links prints every link target of a note, one per line
func Links(args []string) {
	input := "-"
	if len(args) > 0 {
		input = args[0]
	}

	doc, err := readDocument(input, os.Stdin)
	if err != nil {
		fail(err)
	}

	for _, link := range doc.Links() {
		fmt.Println(link)
	}
}

// Index brings the link index up to date with the notes directory
func Index() {
	cfg, log, cleanup := setup()
	defer cleanup()

	idx, err := index.Load(config.IndexFilePath())
	if err != nil {
		log.IndexError("load", err)
		fail(fmt.Errorf("failed to load index: %w", err))
	}

	ix := index.NewIndexer(cfg, idx)
	ix.SetLogger(log)

	result, err := ix.Run()
	if err != nil {
		fail(err)
	}

	if err := idx.Save(config.IndexFilePath()); err != nil {
		log.IndexError("save", err)
		fail(fmt.Errorf("failed to save index: %w", err))
	}

	for _, e := range result.Errors {
		fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("⚠ "+e.Error()))
	}
	fmt.Println(styles.SuccessStyle.Render("✓ " + result.String()))
}

// Backlinks prints the notes linking to the given note
func Backlinks(args []string) {
	if len(args) == 0 {
		fail(fmt.Errorf("no note specified"))
	}
	target := strings.Join(args, " ")

	idx := loadIndex()
	dest, ok := idx.Resolve(target)
	if !ok {
		fail(fmt.Errorf("no indexed note matches %q (run 'wikidoc index' first)", target))
	}

	sources := idx.BacklinksTo(dest)
	fmt.Println(styles.HeaderStyle.Render(fmt.Sprintf("Backlinks to %s: %d", dest, len(sources))))
	for _, source := range sources {
		fmt.Println("  " + styles.LinkStyle.Render(source))
	}
}

// Dangling prints link targets that match no indexed note
func Dangling() {
	idx := loadIndex()
	dangling := idx.Dangling()

	if len(dangling) == 0 {
		fmt.Println(styles.SuccessStyle.Render("✓ No dangling links"))
		return
	}

	targets := make([]string, 0, len(dangling))
	for target := range dangling {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	for _, target := range targets {
		fmt.Println(styles.WarningStyle.Render(fmt.Sprintf("[[%s]]", target)))
		for _, source := range dangling[target] {
			fmt.Println("  " + styles.DimStyle.Render(source))
		}
	}
}

// Diff prints a structural diff of two notes
func Diff(args []string) {
	cfg, _, cleanup := setup()
	defer cleanup()

	if len(args) < 2 {
		fail(fmt.Errorf("diff needs two files"))
	}

	out, err := diff.Generate(args[0], args[1], cfg.Nest)
	if err != nil {
		fail(err)
	}
	if out == "" {
		fmt.Println(styles.DimStyle.Render("No structural differences"))
		return
	}
	fmt.Print(out)
}

// Browse opens the index browser
func Browse() {
	cfg, _, cleanup := setup()
	defer cleanup()

	idx := loadIndex()
	if err := tui.RunBrowse(tui.NewBrowseData(idx, cfg.NotesDir), cfg.Nest); err != nil {
		fail(err)
	}
}

// Init writes the default configuration file if none exists
func Init() {
	path := config.ConfigPath()
	if _, err := os.Stat(path); err == nil {
		fmt.Println(styles.DimStyle.Render("Config already exists: " + path))
		return
	}

	if err := config.DefaultConfig().Save(); err != nil {
		fail(err)
	}
	fmt.Println(styles.SuccessStyle.Render("✓ Wrote " + path))
}

// setup loads the configuration and opens the log file.
// A log file that cannot be opened falls back to a discard logger.
func setup() (*config.Config, *logger.Logger, func()) {
	cfg, err := config.Load()
	if err != nil {
		fail(fmt.Errorf("error loading config: %w", err))
	}

	log := logger.Discard()
	cleanup := func() {}
	if cfg.LogFile != "" {
		if l, c, err := logger.NewFileLogger(cfg.LogFile); err == nil {
			log, cleanup = l, c
		}
	}

	log.ConfigLoaded(cfg.NotesDir, cfg.Format, cfg.Nest)
	return cfg, log, cleanup
}

func loadIndex() *index.Index {
	idx, err := index.Load(config.IndexFilePath())
	if err != nil {
		fail(fmt.Errorf("failed to load index: %w", err))
	}
	return idx
}

// readDocument parses the named file, or stdin when input is "-"
func readDocument(input string, stdin io.Reader) (markdown.Document, error) {
	var (
		content []byte
		err     error
	)
	if input == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(input)
	}
	if err != nil {
		return markdown.Document{}, fmt.Errorf("failed to read %s: %w", input, err)
	}
	return markdown.Parse(string(content)), nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Error: "+err.Error()))
	os.Exit(1)
}
