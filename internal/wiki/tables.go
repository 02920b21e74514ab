package wiki

import (
	"strings"

	"golang.org/x/net/html"
)

// Cell is one <td> of a scraped table row: its flattened text and the
// text of its first link, when present. Wiki item names live inside
// links; descriptions are plain text.
type Cell struct {
	Text     string
	LinkText string
}

// Table is one <table> element with its rows flattened to cells. The
// header row is kept so tables can be located by their header text.
type Table struct {
	node *html.Node
	text string
	Rows [][]Cell
}

// ParseTables extracts every table from a page's HTML fragment.
func ParseTables(pageHTML string) ([]Table, error) {
	root, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return nil, err
	}
	var tables []Table
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			tables = append(tables, newTable(n))
		}
	})
	return tables, nil
}

// FindTable returns the first table whose full text contains every
// marker, the way the loot table is located by "Name" + "Sell Price".
// ok is false when no table matches.
func FindTable(tables []Table, markers ...string) (Table, bool) {
	for _, t := range tables {
		all := true
		for _, m := range markers {
			if !strings.Contains(t.text, m) {
				all = false
				break
			}
		}
		if all {
			return t, true
		}
	}
	return Table{}, false
}

// DataRows returns the table's rows minus the header row, keeping only
// rows that actually carry <td> cells.
func (t Table) DataRows() [][]Cell {
	var out [][]Cell
	for i, row := range t.Rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}

// HeaderText returns the flattened text of the table's first row.
func (t Table) HeaderText() string {
	if len(t.Rows) == 0 {
		return ""
	}
	var parts []string
	for _, c := range t.Rows[0] {
		parts = append(parts, c.Text)
	}
	return strings.Join(parts, " ")
}

// At returns the cell at index i, or a zero cell when the row is too
// short. Wiki rows are ragged; out-of-range reads are routine.
func At(row []Cell, i int) Cell {
	if i < 0 || i >= len(row) {
		return Cell{}
	}
	return row[i]
}

// Name returns the row's item name: the first cell's link text when the
// name is linked, its plain text otherwise.
func Name(row []Cell) string {
	c := At(row, 0)
	if c.LinkText != "" {
		return c.LinkText
	}
	return c.Text
}

func newTable(table *html.Node) Table {
	t := Table{node: table}
	walk(table, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "tr" {
			return
		}
		var row []Cell
		header := false
		walk(n, func(c *html.Node) {
			if c.Type != html.ElementNode {
				return
			}
			switch c.Data {
			case "td":
				row = append(row, Cell{
					Text:     strings.TrimSpace(nodeText(c)),
					LinkText: strings.TrimSpace(firstLinkText(c)),
				})
			case "th":
				header = true
				row = append(row, Cell{Text: strings.TrimSpace(nodeText(c))})
			}
		})
		if header {
			// Header rows stay in Rows[0]; DataRows skips them.
			if len(t.Rows) == 0 {
				t.Rows = append(t.Rows, row)
				return
			}
			return
		}
		t.Rows = append(t.Rows, row)
	})
	t.text = nodeText(table)
	return t
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func firstLinkText(n *html.Node) string {
	var out string
	walk(n, func(c *html.Node) {
		if out == "" && c.Type == html.ElementNode && c.Data == "a" {
			out = nodeText(c)
		}
	})
	return out
}
