// Package output renders unitconv results for the terminal and encodes the
// conversion table.
//
// Styles are declared in embedded/styles.yaml with semantic names (Title,
// Prompt, Result, Error, ...) and adaptive colors. A Renderer binds them to
// a lipgloss renderer for one writer and honors the configured color mode:
//
//	r := output.NewRenderer(os.Stdout, config.ColorAuto)
//	fmt.Fprintln(os.Stdout, r.Render(output.StyleResult, "32.00"))
//
// With color disabled, Render returns its input unchanged.
//
// WriteTable encodes conversion table rows as text, JSON, YAML, TOML or XML.
package output
