package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/unitconv/pkg/config"
	"github.com/arthur-debert/unitconv/pkg/units"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Row is one line of the conversion table
type Row struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Category string `json:"category" yaml:"category" toml:"category"`
	Formula  string `json:"formula" yaml:"formula" toml:"formula"`
}

// Table is the encoded document for structured formats
type Table struct {
	Conversions []Row `json:"conversions" yaml:"conversions" toml:"conversions"`
}

// RowsFrom builds table rows from registry entries, keeping their order
func RowsFrom(entries []units.Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Name:     e.Name(),
			Category: e.Category.String(),
			Formula:  e.Formula,
		})
	}
	return rows
}

// WriteTable encodes rows to w in the given format. The text format is
// styled through r; r may be nil for plain text.
func WriteTable(w io.Writer, format config.Format, rows []Row, r *Renderer) error {
	table := Table{Conversions: rows}
	if table.Conversions == nil {
		table.Conversions = []Row{}
	}

	switch format {
	case config.FormatText, "":
		return writeText(w, rows, r)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(table); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(table)
	case config.FormatXML:
		return writeXML(w, rows)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeText(w io.Writer, rows []Row, r *Renderer) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tFORMULA")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Name, row.Category, row.Formula)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// Style after padding so escape codes do not skew column widths.
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, line := range lines {
		if i == 0 && r != nil {
			line = r.Render(StyleHeader, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeXML(w io.Writer, rows []Row) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("conversions")
	for _, row := range rows {
		el := root.CreateElement("conversion")
		el.CreateAttr("name", row.Name)
		el.CreateAttr("category", row.Category)
		el.CreateText(row.Formula)
	}
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
