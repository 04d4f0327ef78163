package models

// Route is the result of a fare calculation.
type Route struct {
	// Path lists station ids from origin to destination inclusive.
	Path []int `json:"path"`

	// TotalTime is the sum of edge weights along Path, in seconds.
	TotalTime float64 `json:"totalTime"`

	// Cost is TotalTime multiplied by the tariff per unit.
	Cost float64 `json:"cost"`
}

// Connection is an undirected link between two stations.
type Connection struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// Network describes the station graph served to clients so they can draw
// the map and offer valid origins and destinations.
type Network struct {
	Stations      []int        `json:"stations"`
	Connections   []Connection `json:"connections"`
	TariffPerUnit float64      `json:"tariffPerUnit"`
}
