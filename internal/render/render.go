// Package render formats participant lists and bill history for the terminal.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
)

// Formatter renders amounts with two decimals in a locale, prefixed by a currency symbol.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter returns a formatter for a BCP 47 locale such as "en" or "pt-BR".
func NewFormatter(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}, nil
}

// Amount formats v as e.g. "$25.00".
func (f *Formatter) Amount(v float64) string {
	return f.symbol + f.printer.Sprintf("%.2f", v)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// Participants writes the working participant list as a table.
func Participants(w io.Writer, f *Formatter, ps []models.Participant) {
	if len(ps) == 0 {
		fmt.Fprintln(w, "No participants yet.")
		return
	}

	table := newTable(w, []string{"ID", "Name", "Value", "Fixed"})
	for _, p := range ps {
		fixed := ""
		if p.Fixed {
			fixed = "yes"
		}
		table.Append([]string{strconv.Itoa(p.ID), p.Name, f.Amount(p.Value), fixed})
	}
	table.SetFooter([]string{"", "Sum", f.Amount(calculator.Sum(ps)), ""})
	table.Render()
}

// History writes each finalized bill with its participants' shares.
func History(w io.Writer, f *Formatter, bills []*models.Bill) {
	if len(bills) == 0 {
		fmt.Fprintln(w, "No bills finalized yet.")
		return
	}

	table := newTable(w, []string{"Bill", "Total", "Participant", "Value"})
	for _, b := range bills {
		table.Append([]string{b.Name, f.Amount(b.TotalValue), "", ""})
		for _, p := range b.Participants {
			table.Append([]string{"", "", p.Name, f.Amount(p.Value)})
		}
	}
	table.Render()
}
