package commander

// RunCommand is a command to run ingestion of the site with dedup policy.
// Empty policy means the ingester's default policy.
type RunCommand struct {
	Site   string `json:"site"`
	Policy string `json:"policy,omitempty"`
}
