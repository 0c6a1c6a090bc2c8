package providers

import (
	"github.com/rosubs/rosubs/config"
	"github.com/rosubs/rosubs/scrape"
)

// NewSubtitrariRo returns the adapter for subtitrari.ro. The site lists
// results as div.title blocks; older result pages link listings directly.
func NewSubtitrariRo() *Scraper {
	return &Scraper{
		tag:        "subtitrari",
		site:       "subtitrari.ro",
		baseURL:    "https://www.subtitrari.ro",
		searchPath: "/index.php?page=cauta&z7=%s",
		strategies: []scrape.Strategy{
			{Selector: "div.title"},
			{Selector: "a[href*='subtitrare']", Anchor: true},
		},
	}
}

// NewSubsRo returns the adapter for subs.ro.
func NewSubsRo() *Scraper {
	return &Scraper{
		tag:        "subsro",
		site:       "subs.ro",
		baseURL:    "https://www.subs.ro",
		searchPath: "/search.php?q=%s",
		strategies: []scrape.Strategy{
			{Selector: "a[href*='subtitrare'], a[href*='subtitle']", Anchor: true},
			{Selector: "div[class*='subtitle'], div[class*='result']"},
		},
	}
}

// NewTitrariRo returns the adapter for titrari.ro.
func NewTitrariRo() *Scraper {
	return &Scraper{
		tag:        "titrari",
		site:       "titrari.ro",
		baseURL:    "https://www.titrari.ro",
		searchPath: "/index.php?page=cauta&z7=%s",
		strategies: []scrape.Strategy{
			{Selector: "a[href*='subtitrare'], a[href*='id=']", Anchor: true},
			{Selector: "div.title"},
		},
	}
}

// DefaultSearchers returns the sources enabled by conf, in the fixed
// order the aggregator queries them.
func DefaultSearchers(conf *config.Configuration) []Searcher {
	searchers := make([]Searcher, 0, 3)
	if conf.Sources.Subtitrari {
		searchers = append(searchers, NewSubtitrariRo())
	}
	if conf.Sources.SubsRo {
		searchers = append(searchers, NewSubsRo())
	}
	if conf.Sources.Titrari {
		searchers = append(searchers, NewTitrariRo())
	}
	return searchers
}
