package catalog

// Page is one page of remote catalog results. Total counts every product the
// remote service knows about for the active query, not just this page.
type Page struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
