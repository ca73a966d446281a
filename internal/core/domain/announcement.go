package domain

import "time"

// AnnouncementCategory classifies a public notice.
type AnnouncementCategory string

const (
	AnnouncementGeneral     AnnouncementCategory = "general"
	AnnouncementEmergency   AnnouncementCategory = "emergency"
	AnnouncementEvent       AnnouncementCategory = "event"
	AnnouncementMaintenance AnnouncementCategory = "maintenance"
)

func (c AnnouncementCategory) Valid() bool {
	switch c {
	case AnnouncementGeneral, AnnouncementEmergency, AnnouncementEvent, AnnouncementMaintenance:
		return true
	}
	return false
}

// Announcement is a notice published by an admin. Citizens only see active ones.
type Announcement struct {
	ID          string               `json:"id" bson:"_id"`
	Title       string               `json:"title" bson:"title"`
	Content     string               `json:"content" bson:"content"`
	Category    AnnouncementCategory `json:"category" bson:"category"`
	PublishedBy string               `json:"published_by" bson:"published_by"`
	IsActive    bool                 `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" bson:"updated_at"`
}
