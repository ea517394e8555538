package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/seismo/internal/ansi"
	"github.com/papapumpkin/seismo/internal/config"
	"github.com/papapumpkin/seismo/internal/shell"
)

// render writes the given shells in the configured format.
func render(w io.Writer, cfg config.Config, shells []shell.Shell) error {
	doc := shell.Snapshot(shells...)
	switch cfg.Format {
	case config.FormatJSON:
		return writeShellsJSON(w, doc)
	case config.FormatTOML:
		return writeShellsTOML(w, doc)
	default:
		writeShellsTable(w, ansi.Styler{Enabled: cfg.Color}, doc)
		return nil
	}
}

// writeShellsJSON encodes the records as indented JSON. Undefined codes are
// written as null.
func writeShellsJSON(w io.Writer, doc *shell.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding shells JSON: %w", err)
	}
	return nil
}

func writeShellsTOML(w io.Writer, doc *shell.Document) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding shells TOML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func writeShellsTable(w io.Writer, st ansi.Styler, doc *shell.Document) {
	header := fmt.Sprintf("%-22s %8s  %-8s %-8s", "NAME", "RADIUS", "P", "S")
	fmt.Fprintln(w, st.Wrap(header, ansi.Bold))
	for _, r := range doc.Shells {
		fmt.Fprintf(w, "%s %8s  %-8s %-8s\n",
			st.Wrap(fmt.Sprintf("%-22s", r.Name), ansi.Cyan),
			strconv.FormatFloat(r.DefaultRadius, 'f', -1, 64),
			tableCode(r.TempPCode),
			tableCode(r.TempSCode),
		)
	}
}

// tableCode shows undefined codes as "-" and empty ones as "".
func tableCode(code *string) string {
	if code == nil {
		return "-"
	}
	if *code == "" {
		return `""`
	}
	return *code
}
