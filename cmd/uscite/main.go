package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/joho/godotenv"

	"uscite/internal/backend"
	"uscite/internal/config"
	"uscite/internal/export"
	applog "uscite/internal/log"
	"uscite/internal/services"
	"uscite/internal/store"
)

type Params struct {
	Command     string `descr:"Command to run" alts:"add,list,categories,filter,summary,edit,delete,export" strict:"true" positional:"true"`
	Date        string `descr:"Expense date (YYYY-MM-DD, empty means today)" default:""`
	Category    string `descr:"Expense category" default:""`
	Amount      string `descr:"Expense amount, e.g. 25.50" default:""`
	Description string `descr:"Expense description" default:""`
	Position    int    `descr:"1-based position as shown by list" default:"0"`
	Output      string `descr:"Destination file for export (empty synthesizes a timestamped name)" default:""`
	Format      string `descr:"Export format" alts:"csv,xlsx,all" strict:"true" default:"csv"`
}

func main() {
	boa.NewCmdT[Params]("uscite").
		WithShort("Track expenses and export them to CSV or XLSX").
		WithLong("Records expenses in a durable local store, supports listing, category filtering, editing and deletion, and exports the collection to delimited text or a styled workbook.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	result, err := backend.NewFactory(logger).Create(ctx, cfg)
	if err != nil {
		return err
	}
	defer result.Cleanup()

	tracker := services.NewTracker(result.Store, result.Exports)

	switch params.Command {
	case "add":
		return runAdd(ctx, tracker, params)
	case "list":
		return runList(tracker)
	case "categories":
		return runCategories(tracker)
	case "filter":
		return runFilter(tracker, params)
	case "summary":
		return runSummary(tracker)
	case "edit":
		return runEdit(ctx, tracker, params)
	case "delete":
		return runDelete(ctx, tracker, params)
	case "export":
		return runExport(ctx, tracker, params)
	default:
		return fmt.Errorf("unknown command: %s", params.Command)
	}
}

func runAdd(ctx context.Context, tracker *services.Tracker, params *Params) error {
	e, err := tracker.Add(ctx, params.Date, params.Category, params.Amount, params.Description)
	if err != nil {
		return err
	}
	fmt.Printf("Added expense: %s in %s (%s)\n", e.Amount.StringFixed(2), e.Category, e.Date)
	return nil
}

func runList(tracker *services.Tracker) error {
	expenses := tracker.Expenses()
	if len(expenses) == 0 {
		fmt.Println("No expenses recorded.")
		return nil
	}
	printExpenses(os.Stdout, expenses, true)
	return nil
}

func runCategories(tracker *services.Tracker) error {
	summary := tracker.Summary()
	if len(summary) == 0 {
		fmt.Println("No categories found.")
		return nil
	}
	printSummary(os.Stdout, summary, tracker.Total())
	return nil
}

func runFilter(tracker *services.Tracker, params *Params) error {
	if strings.TrimSpace(params.Category) == "" {
		return errors.New("filter requires --category")
	}
	matches := tracker.FilterByCategory(params.Category)
	if len(matches) == 0 {
		fmt.Printf("No expenses in category %q.\n", params.Category)
		return nil
	}
	printExpenses(os.Stdout, matches, false)
	return nil
}

func runSummary(tracker *services.Tracker) error {
	summary := tracker.Summary()
	if len(summary) == 0 {
		fmt.Println("No expenses recorded.")
		return nil
	}
	printSummary(os.Stdout, summary, tracker.Total())
	return nil
}

func runEdit(ctx context.Context, tracker *services.Tracker, params *Params) error {
	e, err := tracker.Edit(ctx, params.Position-1, params.Date, params.Category, params.Amount, params.Description)
	if errors.Is(err, store.ErrIndexOutOfRange) {
		fmt.Printf("No expense at position %d.\n", params.Position)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Updated expense %d: %s in %s (%s)\n", params.Position, e.Amount.StringFixed(2), e.Category, e.Date)
	return nil
}

func runDelete(ctx context.Context, tracker *services.Tracker, params *Params) error {
	err := tracker.Delete(ctx, params.Position-1)
	if errors.Is(err, store.ErrIndexOutOfRange) {
		fmt.Printf("No expense at position %d.\n", params.Position)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Deleted expense %d.\n", params.Position)
	return nil
}

func runExport(ctx context.Context, tracker *services.Tracker, params *Params) error {
	var (
		paths []string
		path  string
		err   error
	)
	switch params.Format {
	case "csv":
		path, err = tracker.ExportCSV(ctx, params.Output)
		paths = []string{path}
	case "xlsx":
		path, err = tracker.ExportSpreadsheet(ctx, params.Output)
		paths = []string{path}
	case "all":
		paths, err = tracker.ExportAll(ctx)
	default:
		return fmt.Errorf("unknown export format: %s", params.Format)
	}

	if errors.Is(err, export.ErrExportEmpty) {
		fmt.Println("Nothing to export.")
		return nil
	}
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Printf("Expenses exported to %s\n", p)
	}
	return nil
}
