package models

// Member is a coworking member on a plan.
type Member struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Company  string `bson:"company,omitempty" json:"company,omitempty"`
	Plan     string `bson:"plan" json:"plan"`         // Basic, Premium, Enterprise, Day Pass
	JoinDate string `bson:"joinDate" json:"joinDate"` // "YYYY-MM-DD"
	Status   string `bson:"status" json:"status"`     // Active, Pending
	Credits  int    `bson:"credits" json:"credits"`
}

type MemberStats struct {
	Total        int     `json:"total"`
	Active       int     `json:"active"`
	Pending      int     `json:"pending"`
	PremiumPlans int     `json:"premiumPlans"`
	PremiumShare float64 `json:"premiumShare"` // percent of members on Premium or Enterprise
	TotalCredits int     `json:"totalCredits"`
}
