package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/discstats/nationals/internal/domain/clean"
)

// Archive pages mark each division's results with an <h3> heading whose
// anchor name starts with "nats", followed by a sortable results table.
const (
	divisionAnchorSelector = `h3 a[name^='nats']`
	resultTableSelector    = `table.tablesorter`
)

// divisionHeadings returns the text of every division heading on the
// page, in document order.
func divisionHeadings(doc *goquery.Document) []string {
	var headings []string
	doc.Find(divisionAnchorSelector).Each(func(_ int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Parent().Text())
		if text == "" {
			text = strings.TrimSpace(a.Text())
		}
		headings = append(headings, text)
	})
	return headings
}

// resultTables returns every results table on the page, in document
// order.
func resultTables(doc *goquery.Document) []clean.Table {
	var tables []clean.Table
	doc.Find(resultTableSelector).Each(func(_ int, sel *goquery.Selection) {
		tables = append(tables, parseTable(sel))
	})
	return tables
}

// parseTable extracts headings and rows from a results table. The first
// row containing <th> cells is taken as the header; when a table has no
// <th> row at all, its first data row is promoted instead.
func parseTable(table *goquery.Selection) clean.Table {
	var t clean.Table
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if ths := tr.Find("th"); ths.Length() > 0 {
			if t.Headings == nil {
				t.Headings = cellTexts(ths)
			}
			return
		}
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return
		}
		t.Rows = append(t.Rows, cellTexts(tds))
	})

	if t.Headings == nil && len(t.Rows) > 0 {
		t.Headings = t.Rows[0]
		t.Rows = t.Rows[1:]
	}
	return t
}

func cellTexts(cells *goquery.Selection) []string {
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}
