package domain

// MergeResult is what one pipeline run produced.
type MergeResult struct {
	OutputPath string         `json:"output_path"`
	Method     ConcatMethod   `json:"method"`
	FellBack   bool           `json:"fell_back"`
	Decision   ConcatDecision `json:"decision"`
	Profiles   []MediaProfile `json:"profiles"`
	Success    bool           `json:"success"`
	Err        error          `json:"-"`
}

// MergeRequest is the input of a URL pipeline run.
type MergeRequest struct {
	URL1          string
	URL2          string
	OutputPath    string
	WorkDir       string
	CookiesPath   string
	ForceReencode bool
}
