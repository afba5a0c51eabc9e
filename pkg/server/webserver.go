package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/virtscope/vm-inventory/pkg/common"
	"github.com/virtscope/vm-inventory/pkg/facet"
	"github.com/virtscope/vm-inventory/pkg/index"
	locsync "github.com/virtscope/vm-inventory/pkg/sync"
	"github.com/virtscope/vm-inventory/pkg/types"
)

var (
	noQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vminventory_queries_total",
		Help: "The total number of inventory list queries",
	})
	noFacetLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vminventory_facet_lookups_total",
		Help: "The total number of facet option lookups",
	})
	noLinkRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vminventory_link_requests_total",
		Help: "The total number of click-through link resolutions",
	})
	noEntryLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vminventory_entry_lookups_total",
		Help: "The total number of applied-filter entry lookups",
	})
)

// WebServer serves the inventory engine over HTTP. Every request runs the
// same filter/sort/page pipeline the view uses; nothing is filtered in a
// second place.
type WebServer struct {
	Index    *index.Index
	BasePath string
}

func (ws *WebServer) HandleVms(w http.ResponseWriter, r *http.Request, write common.JsonWriter) error {
	noQueries.Inc()
	filters, spec, page := queryFromRequest(r)
	return write(ws.Index.Query(filters, spec, page))
}

// entriesResponse pairs the chip list with the filters it was derived from.
type entriesResponse struct {
	Filters *types.AppliedFilters      `json:"filters"`
	Entries []types.AppliedFilterEntry `json:"entries"`
}

func (ws *WebServer) HandleEntries(w http.ResponseWriter, r *http.Request, write common.JsonWriter) error {
	noEntryLookups.Inc()
	filters := locsync.Decode(r.URL.Query())
	return write(&entriesResponse{
		Filters: filters,
		Entries: facet.Entries(filters),
	})
}

func (ws *WebServer) HandleFacets(w http.ResponseWriter, r *http.Request, write common.JsonWriter) error {
	noFacetLookups.Inc()
	return write(ws.Index.FacetOptions())
}

type linkResponse struct {
	Url string `json:"url"`
}

// HandleLink resolves an aggregate-chart segment or explicit filter query
// to a pre-filtered location string with the scope marker set.
func (ws *WebServer) HandleLink(w http.ResponseWriter, r *http.Request, write common.JsonWriter) error {
	noLinkRequests.Inc()
	query := r.URL.Query()
	filters := locsync.Decode(query)
	if segment := query.Get("segment"); segment != "" {
		filters = segmentFilters(segment)
		if filters == nil {
			w.WriteHeader(http.StatusNotFound)
			return write(&linkResponse{})
		}
	}
	return write(&linkResponse{Url: locsync.FilterURL(filters, ws.BasePath)})
}

// segmentFilters maps a chart segment to its filter delta.
func segmentFilters(segment string) *types.AppliedFilters {
	switch segment {
	case "migratable":
		return &types.AppliedFilters{MigrationReadiness: []string{string(types.ReadinessReady)}}
	case "not-migratable":
		return &types.AppliedFilters{MigrationReadiness: []string{string(types.ReadinessNotReady)}}
	case "has-issues":
		return &types.AppliedFilters{HasIssues: true}
	}
	if _, ok := types.StatusLabels[types.PowerState(segment)]; ok {
		return &types.AppliedFilters{Statuses: []string{segment}}
	}
	return nil
}

// Handler wires the API routes.
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/vms", common.JsonHandler(ws.HandleVms))
	mux.HandleFunc("GET /api/vms/facets", common.JsonHandler(ws.HandleFacets))
	mux.HandleFunc("GET /api/vms/entries", common.JsonHandler(ws.HandleEntries))
	mux.HandleFunc("GET /api/vms/link", common.JsonHandler(ws.HandleLink))
	mux.HandleFunc("OPTIONS /", common.RespondToOptions)
	return mux
}
