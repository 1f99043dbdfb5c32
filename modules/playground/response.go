package playground

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/validify/pkg/formstate"
)

// signals is the client state posted by datastar with every action.
type signals struct {
	Values  map[string]any `json:"values"`
	Option  string         `json:"option"`
	Checked bool           `json:"checked"`
}

// view is the state patched back to the client.
type view struct {
	ID     string                          `json:"id,omitempty"`
	OK     bool                            `json:"ok"`
	Fields map[string]formstate.FieldState `json:"fields"`
	Values map[string]any                  `json:"values,omitempty"`
}

func newView(id string, st formstate.FormState, withValues bool) view {
	v := view{ID: id, OK: st.OK, Fields: st.Data}
	if withValues {
		v.Values = st.Entity()
	}
	return v
}

// isDatastar reports whether r was sent by the datastar client.
func isDatastar(r *http.Request) bool {
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream")
}

func readSignals(r *http.Request) (signals, error) {
	var sig signals
	if r.ContentLength == 0 && r.Method != http.MethodGet {
		return sig, nil
	}
	if err := datastar.ReadSignals(r, &sig); err != nil {
		return sig, err
	}
	return sig, nil
}

// render patches v as signals for datastar clients and writes JSON otherwise.
func render(w http.ResponseWriter, r *http.Request, v view) error {
	if !isDatastar(r) {
		return writeJSON(w, http.StatusOK, v)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	sse := datastar.NewSSE(w, r)
	return sse.PatchSignals(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	_ = writeJSON(w, statusOf(err), map[string]string{"error": err.Error()})
}
