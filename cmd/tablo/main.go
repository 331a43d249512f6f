package main

import (
	"context"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tablo"
	nt "tablo/entity"
	"tablo/grid"
	"tablo/plain"
	"tablo/store/duck"
	"tablo/util"
)

const (
	defaultLayout = "layout.yaml"
	maxLogLen     = 1024
)

type options struct {
	layout   string
	logPath  string
	scope    string
	pageSize int

	plain  bool
	page   int
	sort   string
	search string
}

func main() {

	err := newRootCmd().ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	opts := &options{}

	cmd := &cobra.Command{
		Use:          "tablo [flags] <file>",
		Short:        "Page, sort and search the records of a csv or json file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.layout, "layout", defaultLayout, "layout file, skipped when the default is absent")
	flags.StringVar(&opts.logPath, "log", "tablo.log", "log file")
	flags.StringVar(&opts.scope, "scope", "", "search scope: page or data")
	flags.IntVar(&opts.pageSize, "page-size", 0, "rows per page, overriding layout")
	flags.BoolVar(&opts.plain, "plain", false, "print a page and exit")
	flags.IntVar(&opts.page, "page", 1, "page to print with --plain")
	flags.StringVar(&opts.sort, "sort", "", "column to sort on with --plain")
	flags.StringVar(&opts.search, "search", "", "search term with --plain")

	cmd.AddCommand(newLayoutCmd())
	return cmd
}

func newLayoutCmd() *cobra.Command {

	return &cobra.Command{
		Use:   "layout <path>",
		Short: "Write a sample layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.WriteConfig(sampleLayout(), args[0], 0644)
		},
	}
}

func run(ctx context.Context, out, errOut io.Writer, opts *options, path string) (err error) {

	logFile := util.OpenLog(opts.logPath, 0644, errOut)
	defer util.CloseLog(logFile)

	lgr := newLogger(logFile)
	ctx = lgr.WithFields(ctx, "file", path)

	layout, err := loadLayout(opts)
	if err != nil {
		return
	}

	cfg, err := config(layout, opts)
	if err != nil {
		return
	}

	dk, err := duck.New(ctx, lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	err = dk.Load(path)
	if err != nil {
		return
	}

	rows, err := dk.Rows()
	if err != nil {
		return
	}

	engine := cfg.New(ctx, rows, dk, lgr)
	lgr.Info(ctx, "starting up", "rows", engine.Len(), "plain", opts.plain)

	if opts.plain {
		paint(engine, out, opts)
		return
	}

	model := tablo.NewModel(ctx, dk, engine, layout, lgr)
	_, err = tea.NewProgram(model).Run()
	err = errors.Wrapf(err, "failed to run program")
	return
}

func newLogger(writer io.Writer) *sabot.Sabot {

	cfg := &sabot.Config{MaxLen: maxLogLen}
	return cfg.New(writer)
}

func loadLayout(opts *options) (layout *tablo.Layout, err error) {

	_, statErr := os.Stat(opts.layout)
	if opts.layout == defaultLayout && os.IsNotExist(statErr) {
		layout = &tablo.Layout{}
		return
	}

	layout, err = tablo.LoadLayout(opts.layout)
	return
}

func config(layout *tablo.Layout, opts *options) (cfg *grid.Config, err error) {

	cfg, err = layout.Config()
	if err != nil {
		return
	}

	if opts.pageSize > 0 {
		cfg.PageSize = opts.pageSize
	}

	if opts.scope != "" {
		cfg.Scope, err = grid.ParseScope(opts.scope)
	}
	return
}

func paint(engine *grid.Engine, out io.Writer, opts *options) {

	if opts.sort != "" {
		engine.SortBy(opts.sort)
	}
	if opts.search != "" {
		engine.ApplySearch(opts.search)
	}
	engine.GoToPage(opts.page)

	engine.Attach(plain.New(out))
}

func sampleLayout() *tablo.Layout {

	return &tablo.Layout{
		PageSize: grid.DefaultPageSize,
		Search:   string(grid.ScopePage),
		Columns: []nt.Column{
			{Field: "Name", Width: 16},
			{Field: "Company", Width: 16},
			{Field: "Country", Width: 12},
			{Field: "Email", Width: 24, Hidden: true},
		},
		Canonical: grid.DefaultCanonical(),
	}
}
