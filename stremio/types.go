package stremio

// Manifest is the addon descriptor served at /manifest.json.
type Manifest struct {
	ID            string        `json:"id"`
	Version       string        `json:"version"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Logo          string        `json:"logo,omitempty"`
	Resources     []string      `json:"resources"`
	Types         []string      `json:"types"`
	IDPrefixes    []string      `json:"idPrefixes"`
	Catalogs      []CatalogItem `json:"catalogs"`
	BehaviorHints BehaviorHints `json:"behaviorHints"`
}

// CatalogItem ...
type CatalogItem struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// BehaviorHints ...
type BehaviorHints struct {
	Configurable          bool `json:"configurable"`
	ConfigurationRequired bool `json:"configurationRequired"`
}

// Subtitle is one normalized search result. Field names and the fixed
// "rum" language tag are part of the addon wire contract.
type Subtitle struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Lang  string `json:"lang"`
	Title string `json:"title"`
}
