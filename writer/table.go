package writer

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"github.com/mattn/go-colorable"
	"github.com/olekukonko/tablewriter"
	"github.com/polyrabbit/coin-chat/config"
	"github.com/polyrabbit/coin-chat/price"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	faint   = color.New(color.Faint).SprintFunc()
	printer = message.NewPrinter(language.English)
)

type TableWriter struct {
	*uilive.Writer
	table   *tablewriter.Table
	columns []string
}

// Set up ascii table writer, the table is redrawn in place on every Render
func NewTableWriter(columns []string) *TableWriter {
	tw := &TableWriter{Writer: uilive.New(), columns: columns}
	tw.Writer.Out = colorable.NewColorableStdout() // For Windows
	tw.table = newTable(tw.Writer)
	formattedHeaders := make([]string, len(columns))
	for i, hdr := range columns {
		formattedHeaders[i] = color.YellowString(hdr)
	}
	tw.table.SetHeader(formattedHeaders)
	return tw
}

func newTable(out io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	table.SetCenterSeparator(faint("-"))
	table.SetColumnSeparator(faint("|"))
	table.SetRowSeparator(faint("-"))
	return table
}

func highlightChange(changePct float64) string {
	changeText := strconv.FormatFloat(changePct, 'f', 2, 64)
	if changePct == 0 {
		changeText = faint("0")
	} else if changePct > 0 {
		changeText = color.GreenString("+" + changeText)
	} else {
		changeText = color.RedString(changeText)
	}
	return changeText
}

// Render draws one row per successful lookup and returns the row count,
// failed lookups were already logged by the price client.
func (tw *TableWriter) Render(results []price.Result) int {
	tw.table.ClearRows()
	rows := 0
	// Fill in data
	for _, result := range results {
		if result.Status != price.StatusOK {
			continue
		}
		q := result.Quote
		var columns []string
		for _, hdr := range tw.columns {
			switch strings.ToLower(hdr) {
			case strings.ToLower(config.ColumnSymbol):
				columns = append(columns, strings.ToUpper(q.Token))
			case strings.ToLower(config.ColumnPrice):
				columns = append(columns, printer.Sprintf("$%.2f", q.Price))
			case strings.ToLower(config.ColumnChange24hPct):
				columns = append(columns, highlightChange(q.Change24h))
			case strings.ToLower(config.ColumnCoinID):
				columns = append(columns, q.ID)
			case strings.ToLower(config.ColumnUpdated):
				columns = append(columns, q.UpdatedAt.Local().Format("15:04:05"))
			default:
				// config rejects unknown columns
				columns = append(columns, "")
			}
		}
		tw.table.Append(columns)
		rows++
	}

	tw.table.Render()
	tw.Flush()
	return rows
}

// RenderAliases prints which names and tickers map to which coin id.
func RenderAliases(out io.Writer, aliases []price.Alias) {
	var (
		ids   []string
		names = make(map[string][]string)
	)
	for _, a := range aliases {
		if _, seen := names[a.ID]; !seen {
			ids = append(ids, a.ID)
		}
		names[a.ID] = append(names[a.ID], a.Name)
	}

	table := newTable(out)
	table.SetHeader([]string{color.YellowString("Coin ID"), color.YellowString("Names")})
	for _, id := range ids {
		table.Append([]string{id, strings.Join(names[id], ", ")})
	}
	table.Render()
}
