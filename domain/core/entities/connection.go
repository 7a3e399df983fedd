package entities

// Connection edge statuses that matter to suggestion building. Any other
// status (declined, withdrawn) leaves the counterpart eligible again.
const (
	ConnectionStatusAccepted = "accepted"
	ConnectionStatusPending  = "pending"
)

// ConnectionEdge is a raw connection record between two members.
type ConnectionEdge struct {
	RequesterID int64
	AddresseeID int64
	Status      string
}

// CounterpartOf returns the other party of the edge from the viewer's side.
func (e *ConnectionEdge) CounterpartOf(viewerID int64) int64 {
	if e.RequesterID == viewerID {
		return e.AddresseeID
	}
	return e.RequesterID
}
