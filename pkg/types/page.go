package types

// DefaultPageSize matches the table's initial rows-per-page selection.
const DefaultPageSize = 20

// PageState is the visible page position. Number is 1-based.
type PageState struct {
	Number int `json:"page"`
	Size   int `json:"pageSize"`
}

func DefaultPage() PageState {
	return PageState{Number: 1, Size: DefaultPageSize}
}

// Reset moves back to the first page. Callers must reset whenever the
// filtered result set changes, so the page cannot point past the end.
func (p *PageState) Reset() {
	p.Number = 1
}
