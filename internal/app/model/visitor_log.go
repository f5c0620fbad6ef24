package model

import "time"

// VisitorLog is an append-only page-visit record. Rows are never updated;
// they are only read in aggregate for admin statistics and purged after the
// configured retention window.
type VisitorLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	Path      string    `gorm:"type:varchar(255);index" json:"path"`
	Device    string    `gorm:"type:varchar(20)" json:"device"`
	Browser   string    `gorm:"type:varchar(40)" json:"browser"`
	OS        string    `gorm:"type:varchar(40)" json:"os"`
	Referrer  string    `gorm:"type:varchar(255)" json:"referrer,omitempty"`
	// IP is coarsened before storage: IPv4 last octet zeroed, IPv6 cut to /48.
	IP string `gorm:"type:varchar(45)" json:"ip"`
}

func (VisitorLog) TableName() string {
	return "visitor_logs"
}
