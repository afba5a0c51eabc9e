package common

import (
	"log"
	"net/http"

	"github.com/bytedance/sonic"
)

// JsonWriter encodes one response value onto the wire.
type JsonWriter func(v any) error

// JsonHandler wraps a handler with CORS preflight handling and a sonic
// encoder bound to the response. Handler errors are logged, not surfaced;
// the engine's contracts degrade to neutral values instead of failing.
func JsonHandler(fn func(w http.ResponseWriter, r *http.Request, write JsonWriter) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		enc := sonic.ConfigDefault.NewEncoder(w)
		if err := fn(w, r, enc.Encode); err != nil {
			log.Printf("Error handling request: %v", err)
		}
	}
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
	}
	w.WriteHeader(http.StatusAccepted)
}
