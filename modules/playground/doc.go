// Package playground serves an interactive demo form over HTTP.
//
// Every browser session owns a formstate.Form whose snapshot lives in a
// formstore.Store between requests. The page is rendered with templ and
// wired with datastar: inputs post their signals to the action routes and
// the resulting field state is patched back as signals over SSE. Clients that
// are not datastar receive the state as JSON.
//
//	GET  /                           new session, full page
//	GET  /forms/{id}                 current state
//	POST /forms/{id}/change/{field}  value typed
//	POST /forms/{id}/blur/{field}    value committed
//	POST /forms/{id}/toggle/{field}  option toggled in a list field
//	POST /forms/{id}/validate        full validation
//	POST /forms/{id}/reset           back to the initial state
//
// The age bounds depend on the selected country; the rule lives in
// derive.yaml and is compiled with pkg/derive.
package playground
