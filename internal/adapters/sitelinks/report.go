package sitelinks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report writes a human-readable diagnosis of the asset at path: its raw
// content, whether it parses, the link count and one line per link.
// It returns the load error, if any, after reporting it.
func Report(w io.Writer, path string) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	faint := r.NewStyle().Faint(true)
	ok := r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	bad := r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	label := r.NewStyle().Foreground(lipgloss.Color("6"))

	var b strings.Builder

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(&b, bad.Render("✗ cannot read "+path+": "+err.Error()))
		_, _ = io.WriteString(w, b.String())

		return fmt.Errorf("reading site links: %w", err)
	}

	fmt.Fprintln(&b, title.Render("Content of "+path+":"))
	fmt.Fprintln(&b, faint.Render(strings.TrimRight(string(content), "\n")))
	fmt.Fprintln(&b)

	links, err := Parse(content)
	if err != nil {
		fmt.Fprintln(&b, bad.Render("✗ "+err.Error()))
		_, _ = io.WriteString(w, b.String())

		return err
	}

	fmt.Fprintln(&b, ok.Render("✓ valid JSON"))
	fmt.Fprintf(&b, "%s %d\n\n", label.Render("Total links:"), len(links))
	fmt.Fprintln(&b, title.Render("Links:"))

	for i, link := range links {
		fmt.Fprintf(&b, "%d. %s %s, %s %s, %s %s\n", i+1,
			label.Render("name:"), link.Name,
			label.Render("link:"), link.Link,
			label.Render("icon:"), link.Icon,
		)
	}

	_, err = io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
