/*
Package station defines the station/connection data model and its loader.

The dataset is a single JSON document with top-level keys "stations" and
"connections", fetched once per session and held immutable afterwards:

	loader := station.NewLoader(10 * time.Second)
	ds, source := loader.LoadOrPlaceholder(ctx, cfg.Data.URL)

Any fetch or parse failure silently degrades to the fixed placeholder
dataset so the demo remains usable offline; the substitution is logged,
never surfaced as an error. Lookup misses (unknown station, origin with
no connections) are empty results, not errors.

Referential integrity between connection names and the station list is
not guaranteed by the source data. Audit reports violations through a
consolidated warning aggregator without rejecting the dataset.
*/
package station
