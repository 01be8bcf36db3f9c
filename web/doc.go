// Package web serves the dataset and the static map page over HTTP.
//
// The API mirrors the data file contract: the page can fetch the whole
// document from /api/data or the static ./data/web_data.json path, and
// the remaining endpoints exist for the sidebar (search, connection
// list, statistics).
package web
