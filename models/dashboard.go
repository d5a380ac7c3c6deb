package models

// Dashboard is a named pointer to an externally hosted, embeddable
// visualization. EmbedURL is always stored as a bare URL: iframe markup is
// stripped by the URL normalizer before the value reaches the store.
type Dashboard struct {
	ID int64 `json:"id"`

	// Name is the human-readable label shown in selectors and lists.
	Name string `json:"name"`

	// EmbedURL is the bare rendering endpoint of the dashboard.
	EmbedURL string `json:"embed_url"`
}

// TableName returns the name of the database table
// associated with the Dashboard model.
func (d Dashboard) TableName() string {
	return "dashboards"
}
