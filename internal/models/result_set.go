package models

import "sort"

// EndpointStats accumulates the requests seen for one endpoint.
// Requests always equals the number of response times summed into TotalTime.
type EndpointStats struct {
	Requests  int     `json:"requests"`
	TotalTime float64 `json:"total_time"`
}

// Average returns the mean response time in seconds
func (s EndpointStats) Average() float64 {
	if s.Requests == 0 {
		return 0
	}
	return s.TotalTime / float64(s.Requests)
}

// ResultSet maps an endpoint to its statistics across every file of a run.
// It is owned by the caller and is not safe for concurrent writers.
type ResultSet map[string]*EndpointStats

// NewResultSet returns an empty ResultSet
func NewResultSet() ResultSet {
	return make(ResultSet)
}

// Add records one request for endpoint
func (rs ResultSet) Add(endpoint string, responseTime float64) {
	stats, ok := rs[endpoint]
	if !ok {
		stats = &EndpointStats{}
		rs[endpoint] = stats
	}
	stats.Requests++
	stats.TotalTime += responseTime
}

// Endpoints returns the endpoint keys in lexicographic order
func (rs ResultSet) Endpoints() []string {
	endpoints := make([]string, 0, len(rs))
	for endpoint := range rs {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)
	return endpoints
}
