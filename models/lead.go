package models

// Lead is a prospective member moving through the sales pipeline.
type Lead struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	Source      string `bson:"source" json:"source"` // Website, Referral, Walk-in
	Stage       string `bson:"stage" json:"stage"`   // Lead, Qualified, Tour, Signed
	Probability int    `bson:"probability" json:"probability"`
	AssignedTo  string `bson:"assignedTo" json:"assignedTo"`
	LastContact string `bson:"lastContact" json:"lastContact"`
}

// PipelineStage is one column of the lead pipeline.
type PipelineStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

type LeadStats struct {
	Total              int             `json:"total"`
	Qualified          int             `json:"qualified"`
	QualifiedShare     float64         `json:"qualifiedShare"`
	ToursScheduled     int             `json:"toursScheduled"`
	Signed             int             `json:"signed"`
	AverageProbability float64         `json:"averageProbability"`
	Pipeline           []PipelineStage `json:"pipeline"`
}
