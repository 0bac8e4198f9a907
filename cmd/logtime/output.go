package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"logtime/internal/fights"
)

const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

// renderRows writes the fight rows to the command's stdout in the requested
// format. Text is the scrape-friendly default the tool has always printed.
func renderRows(cmd *cobra.Command, format string, rows []fights.Row) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case formatTable:
		fmt.Fprintln(cmd.OutOrStdout(), renderRowsTable(rows))
		return nil
	default:
		for _, row := range rows {
			fmt.Fprintf(cmd.OutOrStdout(), "%s - %s - Pull #%d - (%s)\n",
				row.Timestamp, row.BossName, row.Pull, row.Result)
		}
		return nil
	}
}

func renderRowsTable(rows []fights.Row) string {
	tw := table.NewWriter()
	if stdoutIsTerminal() {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"Pull", "Time", "Boss", "Result", "Duration", "Boss %"})
	for _, row := range rows {
		tw.AppendRow(table.Row{
			row.Pull,
			row.Timestamp,
			row.BossName,
			row.Result,
			row.DurationText,
			formatBossHP(row.BossHPLeft),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func formatBossHP(hpLeft *float64) string {
	if hpLeft == nil {
		return "-"
	}
	return strconv.FormatFloat(*hpLeft, 'f', 1, 64) + "%"
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
