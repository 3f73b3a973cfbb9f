package catalogRepo

import "workhub/models"

// Seed is the full data set a catalog is loaded from.
type Seed struct {
	Bookings    []models.Booking
	Members     []models.Member
	Leads       []models.Lead
	Invoices    []models.Invoice
	Workspaces  []models.Workspace
	Revenue     []models.RevenuePoint
	Utilization []models.UtilizationBucket
	Occupancy   []models.OccupancyPoint
}

// DefaultSeed returns the demo data set shown on a fresh dashboard.
func DefaultSeed() Seed {
	return Seed{
		Bookings: []models.Booking{
			{ID: "1", Title: "Team Standup", Space: "Meeting Room A", StartTime: "09:00", EndTime: "10:00", Attendees: 8, Credits: 2, Status: models.BookingConfirmed},
			{ID: "2", Title: "Client Presentation", Space: "Meeting Room B", StartTime: "14:00", EndTime: "16:00", Attendees: 12, Credits: 4, Status: models.BookingConfirmed},
			{ID: "3", Title: "Interview Session", Space: "Private Office 1", StartTime: "11:30", EndTime: "12:30", Attendees: 3, Credits: 3, Status: models.BookingPending},
		},
		Members: []models.Member{
			{ID: "1", Name: "John Smith", Email: "john@company.com", Plan: "Premium", JoinDate: "2024-01-15", Status: "Active", Credits: 45},
			{ID: "2", Name: "Sarah Johnson", Email: "sarah@startup.io", Plan: "Basic", JoinDate: "2024-02-20", Status: "Active", Credits: 12},
			{ID: "3", Name: "Mike Chen", Email: "mike@techcorp.com", Plan: "Enterprise", JoinDate: "2024-01-08", Status: "Active", Credits: 120},
			{ID: "4", Name: "Lisa Williams", Email: "lisa@agency.com", Plan: "Premium", JoinDate: "2024-03-01", Status: "Pending", Credits: 30},
		},
		Leads: []models.Lead{
			{ID: "1", Name: "Alex Rodriguez", Email: "alex@startup.co", Phone: "+1 (555) 123-4567", Source: "Website", Stage: "Qualified", Probability: 75, AssignedTo: "Sarah M.", LastContact: "2024-01-15"},
			{ID: "2", Name: "Jennifer Kim", Email: "jen@agency.com", Phone: "+1 (555) 987-6543", Source: "Referral", Stage: "Tour", Probability: 85, AssignedTo: "Mike T.", LastContact: "2024-01-14"},
			{ID: "3", Name: "David Chen", Email: "david@techcorp.io", Phone: "+1 (555) 456-7890", Source: "Walk-in", Stage: "Lead", Probability: 35, AssignedTo: "Lisa W.", LastContact: "2024-01-13"},
		},
		Invoices: []models.Invoice{
			{ID: "INV-001", Member: "TechCorp Inc.", Amount: 12990000, Currency: "INR", DueDate: "2024-02-15", Status: "Paid", Plan: "Enterprise"},
			{ID: "INV-002", Member: "Startup Agency", Amount: 5990000, Currency: "INR", DueDate: "2024-02-20", Status: "Pending", Plan: "Premium"},
			{ID: "INV-003", Member: "Design Studio", Amount: 2990000, Currency: "INR", DueDate: "2024-02-18", Status: "Overdue", Plan: "Basic"},
			{ID: "INV-004", Member: "Marketing Co.", Amount: 8990000, Currency: "INR", DueDate: "2024-02-25", Status: "Paid", Plan: "Premium"},
		},
		Workspaces: []models.Workspace{
			{ID: "D001", Type: "desk", Status: "available", Name: "Hot Desk 1"},
			{ID: "D002", Type: "desk", Status: "occupied", Name: "Hot Desk 2"},
			{ID: "D003", Type: "desk", Status: "reserved", Name: "Hot Desk 3"},
			{ID: "M001", Type: "meeting-room", Status: "available", Name: "Meeting Room A", Capacity: 8, Amenities: []string{"Projector", "Whiteboard"}},
			{ID: "M002", Type: "meeting-room", Status: "occupied", Name: "Meeting Room B", Capacity: 12, Amenities: []string{"TV", "Conference Phone"}},
			{ID: "O001", Type: "office", Status: "occupied", Name: "Private Office 1", Capacity: 4},
			{ID: "O002", Type: "office", Status: "available", Name: "Private Office 2", Capacity: 6},
		},
		Revenue: []models.RevenuePoint{
			{Month: "Jan", Revenue: 24500, Forecast: 26000},
			{Month: "Feb", Revenue: 28750, Forecast: 30000},
			{Month: "Mar", Revenue: 32100, Forecast: 33500},
			{Month: "Apr", Revenue: 29800, Forecast: 31000},
			{Month: "May", Revenue: 35600, Forecast: 37000},
			{Month: "Jun", Revenue: 41200, Forecast: 42500},
		},
		Utilization: []models.UtilizationBucket{
			{Name: "Hot Desks", Value: 68},
			{Name: "Private Offices", Value: 89},
			{Name: "Meeting Rooms", Value: 76},
			{Name: "Event Spaces", Value: 45},
		},
		Occupancy: []models.OccupancyPoint{
			{Time: "09:00", Occupancy: 45},
			{Time: "10:00", Occupancy: 68},
			{Time: "11:00", Occupancy: 82},
			{Time: "12:00", Occupancy: 95},
			{Time: "13:00", Occupancy: 78},
			{Time: "14:00", Occupancy: 88},
			{Time: "15:00", Occupancy: 92},
			{Time: "16:00", Occupancy: 85},
			{Time: "17:00", Occupancy: 72},
			{Time: "18:00", Occupancy: 45},
		},
	}
}
