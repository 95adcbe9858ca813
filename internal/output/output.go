// Package output renders command results as JSON, YAML or a table.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"sigs.k8s.io/yaml"

	"github.com/shdw-drive/shdw-cli/internal/models"
)

type Format string

const (
	JSONFormat  Format = "json"
	YAMLFormat  Format = "yaml"
	TableFormat Format = "table"
)

var AllFormats = []Format{JSONFormat, YAMLFormat, TableFormat}

// ParseFormat validates an --output flag value.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !lo.Contains(AllFormats, f) {
		return "", fmt.Errorf("invalid output format %q, expected one of %v", s, AllFormats)
	}
	return f, nil
}

var noStyle = table.Style{
	Name:   "StyleDefault",
	Box:    table.StyleBoxDefault,
	Color:  table.ColorOptionsDefault,
	Format: table.FormatOptionsDefault,
	HTML:   table.DefaultHTMLOptions,
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
	Title: table.TitleOptionsDefault,
}

type Options struct {
	Format     Format
	HideHeader bool // Hide the column headers
	NoStyle    bool // Remove all styling from table output.
}

// IsTerminal reports whether w is a terminal. Table styling is only applied
// to terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes results to w. It satisfies the dispatcher's Reporter.
type Printer struct {
	w       io.Writer
	options Options
}

func NewPrinter(w io.Writer, options Options) *Printer {
	if options.Format == "" {
		options.Format = JSONFormat
	}
	return &Printer{w: w, options: options}
}

// Report prints v. Listings of files and storage accounts render as a table
// in table format; every other result falls back to JSON.
func (p *Printer) Report(v any) error {
	if p.options.Format == TableFormat {
		switch items := v.(type) {
		case []string:
			return outputTable(p.w, fileColumns, p.options, items)
		case []models.StorageAccount:
			return outputTable(p.w, accountColumns, p.options, items)
		case *models.StorageAccount:
			return outputTable(p.w, accountColumns, p.options, []models.StorageAccount{*items})
		}
		return p.nonTabular(JSONFormat, v)
	}
	return p.nonTabular(p.options.Format, v)
}

func (p *Printer) nonTabular(format Format, v any) error {
	switch format {
	case JSONFormat:
		encoder := json.NewEncoder(p.w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case YAMLFormat:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = p.w.Write(b)
		return err
	default:
		return fmt.Errorf("invalid format %q", format)
	}
}

type column[T any] struct {
	table.ColumnConfig
	Value func(T) string
}

var fileColumns = []column[string]{
	{ColumnConfig: table.ColumnConfig{Name: "file"}, Value: func(s string) string { return s }},
}

var accountColumns = []column[models.StorageAccount]{
	{ColumnConfig: table.ColumnConfig{Name: "address"}, Value: func(a models.StorageAccount) string { return a.Address.String() }},
	{ColumnConfig: table.ColumnConfig{Name: "identifier"}, Value: func(a models.StorageAccount) string { return a.Identifier }},
	{
		ColumnConfig: table.ColumnConfig{Name: "reserved", Align: text.AlignRight},
		Value:        func(a models.StorageAccount) string { return datasize.ByteSize(a.Storage).HR() },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "available", Align: text.AlignRight},
		Value:        func(a models.StorageAccount) string { return datasize.ByteSize(a.StorageAvailable).HR() },
	},
	{ColumnConfig: table.ColumnConfig{Name: "immutable"}, Value: func(a models.StorageAccount) string { return fmt.Sprint(a.Immutable) }},
	{ColumnConfig: table.ColumnConfig{Name: "to be deleted"}, Value: func(a models.StorageAccount) string { return fmt.Sprint(a.ToBeDeleted) }},
	{ColumnConfig: table.ColumnConfig{Name: "version"}, Value: func(a models.StorageAccount) string { return a.Version }},
}

func outputTable[T any](w io.Writer, columns []column[T], options Options, items []T) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	configs := lo.Map(columns, func(c column[T], i int) table.ColumnConfig {
		config := c.ColumnConfig
		config.Number = i + 1
		return config
	})
	tw.SetColumnConfigs(configs)

	if !options.HideHeader {
		headers := lo.Map(columns, func(c column[T], _ int) any { return c.Name })
		tw.AppendHeader(headers)
	}

	tw.SetStyle(table.StyleColoredGreenWhiteOnBlack)
	if options.NoStyle {
		tw.SetStyle(noStyle)
	}

	for _, item := range items {
		values := lo.Map(columns, func(c column[T], _ int) any {
			return c.Value(item)
		})
		tw.AppendRow(values)
	}

	tw.Render()
	return nil
}
