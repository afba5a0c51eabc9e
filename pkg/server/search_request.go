package server

import (
	"net/http"

	"github.com/gorilla/schema"

	locsync "github.com/virtscope/vm-inventory/pkg/sync"
	"github.com/virtscope/vm-inventory/pkg/types"
)

// SearchRequest carries the non-filter pipeline parameters of a query.
// Filter keys are decoded separately by the location codec.
type SearchRequest struct {
	Sort     string `schema:"sort"`
	Dir      string `schema:"dir"`
	Page     int    `schema:"page"`
	PageSize int    `schema:"size"`
}

var requestDecoder = newRequestDecoder()

func newRequestDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// queryFromRequest decodes one GET request into filter, sort and page
// state. Malformed or unknown parameters degrade to defaults.
func queryFromRequest(r *http.Request) (*types.AppliedFilters, types.SortSpec, types.PageState) {
	query := r.URL.Query()

	request := SearchRequest{}
	if err := requestDecoder.Decode(&request, query); err != nil {
		request = SearchRequest{}
	}

	page := types.DefaultPage()
	if request.Page >= 1 {
		page.Number = request.Page
	}
	if request.PageSize > 0 {
		page.Size = request.PageSize
	}

	spec := types.SortSpec{
		Column:     types.SortColumn(request.Sort),
		Descending: request.Dir == "desc",
	}

	return locsync.Decode(query), spec, page
}
