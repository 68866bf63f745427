// Package router matches request paths against a registration-ordered route
// table with typed dynamic segments.
//
// A route template consists of literal segments and zero or more <type:name>
// markers. Marker types are drawn from a closed set: int, float, String,
// path, and uuid (version 4 only). Dynamic templates compile to anchored
// regular expressions where each marker matches a run of non-slash
// characters.
//
// Matching walks the table in registration order and stops at the first
// route that matches: by exact literal equality, by literal equality of the
// path without its query string when query arguments are present, or by the
// compiled expression. There is no specificity tie-break; overlapping
// templates shadow each other in registration order.
//
//	table := router.New()
//	table.Add("/items/<int:id>", itemHandler)
//	match, found := table.Match("/items/42", true)
package router
