package domain

import "time"

// ComplaintCategory classifies a complaint.
type ComplaintCategory string

const (
	CategoryInfrastructure ComplaintCategory = "infrastructure"
	CategorySanitation     ComplaintCategory = "sanitation"
	CategoryTraffic        ComplaintCategory = "traffic"
	CategoryElectricity    ComplaintCategory = "electricity"
	CategoryWater          ComplaintCategory = "water"
	CategoryOther          ComplaintCategory = "other"
)

var complaintCategories = []ComplaintCategory{
	CategoryInfrastructure, CategorySanitation, CategoryTraffic,
	CategoryElectricity, CategoryWater, CategoryOther,
}

func (c ComplaintCategory) Valid() bool {
	for _, v := range complaintCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ComplaintStatus is the triage state of a complaint. Admins may move a
// complaint between any two states.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
	StatusRejected   ComplaintStatus = "rejected"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Priority is the citizen-declared urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Complaint is a citizen-filed issue report.
type Complaint struct {
	ID            string            `json:"id" bson:"_id"`
	CitizenID     string            `json:"citizen_id" bson:"citizen_id"`
	Title         string            `json:"title" bson:"title"`
	Description   string            `json:"description" bson:"description"`
	Category      ComplaintCategory `json:"category" bson:"category"`
	Location      string            `json:"location" bson:"location"`
	Status        ComplaintStatus   `json:"status" bson:"status"`
	Priority      Priority          `json:"priority" bson:"priority"`
	AdminResponse string            `json:"admin_response,omitempty" bson:"admin_response,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" bson:"updated_at"`
}
