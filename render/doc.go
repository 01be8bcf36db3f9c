/*
Package render defines the map-rendering contract behind capability
interfaces (MarkerLayer, LineLayer, SuggestionView) plus a headless
MapView implementing them.

The MapView holds the process-side mirror of the map widget state: one
marker per station keyed by name, the drawn line overlays, and the
viewport. Line colors come from a fixed operator lookup with a default
for unknown operators.
*/
package render
