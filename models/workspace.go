package models

// Workspace is a bookable unit on the floor plan.
type Workspace struct {
	ID        string   `bson:"id" json:"id"`
	Type      string   `bson:"type" json:"type"`     // desk, office, meeting-room
	Status    string   `bson:"status" json:"status"` // available, occupied, reserved, maintenance
	Name      string   `bson:"name" json:"name"`
	Capacity  int      `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Amenities []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
}

type WorkspaceView struct {
	Workspace
	Affordance Affordance `json:"affordance"`
	Bookable   bool       `json:"bookable"`
}

type SpaceStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Reserved    int `json:"reserved"`
	Maintenance int `json:"maintenance"`
}
