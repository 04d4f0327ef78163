package models

// RouteRequest asks for the cheapest trip between two stations.
type RouteRequest struct {
	// Origin is the station id the trip starts at.
	Origin int `json:"origin"`

	// Destination is the station id the trip ends at.
	Destination int `json:"destination"`
}
