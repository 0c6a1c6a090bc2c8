package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/rosubs/rosubs/config"
	"github.com/rosubs/rosubs/scrape"
	"github.com/rosubs/rosubs/stremio"
)

// Lang is the fixed ISO 639-2/B tag for Romanian expected by Stremio.
const Lang = "rum"

// Scraper is a configurable adapter for one subtitle site: where to
// search, how to pick listings out of the markup, and how to tag results.
// The three built-in sites differ only in this configuration.
type Scraper struct {
	tag        string // id prefix, e.g. "subtitrari"
	site       string // display name, e.g. "subtitrari.ro"
	baseURL    string
	searchPath string // fmt template receiving the escaped IMDB id
	strategies []scrape.Strategy
}

// Name implements Searcher.
func (s *Scraper) Name() string {
	return s.tag
}

// Site returns the human-readable site name.
func (s *Scraper) Site() string {
	return s.site
}

// SearchSubtitles implements Searcher. Network errors, non-200 answers
// and unparseable bodies all degrade to an empty result for this source
// only; a single bad listing is skipped without aborting the rest.
func (s *Scraper) SearchSubtitles(ctx context.Context, videoID stremio.VideoID, contentType string) []stremio.Subtitle {
	searchURL := s.baseURL + fmt.Sprintf(s.searchPath, url.QueryEscape(videoID.IMDB))
	log.Infof("Searching %s with URL: %s", s.site, searchURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		log.Errorf("Error building %s request: %s", s.site, err)
		return nil
	}

	resp, err := scrape.GetClient().Do(req)
	if err != nil {
		log.Errorf("Error scraping %s: %s", s.site, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warningf("%s returned status %d", s.site, resp.StatusCode)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Errorf("Error parsing %s response: %s", s.site, err)
		return nil
	}

	results := scrape.Extract(doc, s.strategies, config.Get().ResultLimit)

	subtitles := make([]stremio.Subtitle, 0, len(results))
	for idx, result := range results {
		link, err := s.absolute(result.Link)
		if err != nil {
			log.Errorf("Error mapping %s entry %d: %s", s.site, idx, err)
			continue
		}

		subtitles = append(subtitles, stremio.Subtitle{
			ID:    fmt.Sprintf("%s_%d_%s", s.tag, idx, videoID.IMDB),
			URL:   link,
			Lang:  Lang,
			Title: fmt.Sprintf("[%s] %s", s.site, result.Title),
		})
	}
	return subtitles
}

func (s *Scraper) absolute(link string) (string, error) {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link, nil
	}

	base, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
