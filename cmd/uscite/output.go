package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"uscite/internal/core"
)

func printExpenses(out io.Writer, expenses []core.Expense, withTotal bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Date", "Category", "Amount", "Description"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Amount", Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	for i, e := range expenses {
		tw.AppendRow(table.Row{i + 1, e.Date.String(), e.Category, e.Amount.StringFixed(2), e.Description})
	}
	if withTotal {
		tw.AppendFooter(table.Row{"", "", text.Bold.Sprint("Total"), text.Bold.Sprint(core.Sum(expenses).StringFixed(2)), ""})
	}
	tw.Render()
}

func printSummary(out io.Writer, summary []core.CategoryAmount, total decimal.Decimal) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Count", "Amount"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Count", Align: text.AlignRight},
		{Name: "Amount", Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	for _, c := range summary {
		tw.AppendRow(table.Row{c.Name, c.Count, c.Amount.StringFixed(2)})
	}
	tw.AppendFooter(table.Row{text.Bold.Sprint("Total"), "", text.Bold.Sprint(total.StringFixed(2))})
	tw.Render()
}
