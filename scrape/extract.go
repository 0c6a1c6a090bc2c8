package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Result is a single link/title pair pulled out of a search results page,
// before URL resolution and id assignment.
type Result struct {
	Link  string
	Title string
}

// Strategy selects candidate entries in a results document. Anchor
// strategies read href and text from the matched element itself; container
// strategies use the first anchor nested in the match and skip containers
// without one.
type Strategy struct {
	Selector string
	Anchor   bool
}

// Extract runs the strategies in order and returns the matches of the
// first one that yields anything, capped at limit entries. Entries with a
// blank link or title are dropped and count toward "no match", so a
// strategy matching only junk still falls through to the next one.
func Extract(doc *goquery.Document, strategies []Strategy, limit int) []Result {
	for _, strategy := range strategies {
		if results := strategy.match(doc, limit); len(results) > 0 {
			return results
		}
	}
	return nil
}

func (st Strategy) match(doc *goquery.Document, limit int) []Result {
	var results []Result
	doc.Find(st.Selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if limit > 0 && len(results) >= limit {
			return false
		}

		anchor := s
		if !st.Anchor {
			anchor = s.Find("a").First()
			if anchor.Length() == 0 {
				return true
			}
		}

		link := strings.TrimSpace(anchor.AttrOr("href", ""))
		title := strings.TrimSpace(anchor.Text())
		if link == "" || title == "" {
			return true
		}

		results = append(results, Result{Link: link, Title: title})
		return true
	})
	return results
}
