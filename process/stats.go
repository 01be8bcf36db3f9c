package process

import "sort"

// OriginCount pairs an origin station with its outgoing route count.
type OriginCount struct {
	Station string `json:"station"`
	Count   int    `json:"count"`
}

// Statistics summarizes the raw route records.
type Statistics struct {
	TotalRoutes         int            `json:"total_routes"`
	UniqueStations      int            `json:"unique_stations"`
	Operators           map[string]int `json:"operators"`
	Countries           map[string]int `json:"countries"`
	TopConnectedOrigins []OriginCount  `json:"top_connected_stations"`
}

// Statistics calculates summary statistics about the route data: totals,
// per-operator and per-country counts, and the ten best connected origins.
func (p *Processor) Statistics() Statistics {
	operators := map[string]int{}
	countries := map[string]int{}
	originCounts := map[string]int{}
	uniqueStations := map[string]struct{}{}

	for _, r := range p.routes {
		operators[r.Operator]++
		countries[r.Country]++
		originCounts[r.Origin]++
		uniqueStations[r.Origin] = struct{}{}
		uniqueStations[r.Destination] = struct{}{}
	}

	top := make([]OriginCount, 0, len(originCounts))
	for name, n := range originCounts {
		top = append(top, OriginCount{Station: name, Count: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Station < top[j].Station
	})
	if len(top) > 10 {
		top = top[:10]
	}

	return Statistics{
		TotalRoutes:         len(p.routes),
		UniqueStations:      len(uniqueStations),
		Operators:           operators,
		Countries:           countries,
		TopConnectedOrigins: top,
	}
}
