package models

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AdminProfile struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	FullName  string    `gorm:"column:full_name" json:"full_name"`
	Email     string    `gorm:"column:email" json:"email"`
	Phone     string    `gorm:"column:phone" json:"phone,omitempty"`
	JobTitle  string    `gorm:"column:job_title" json:"job_title,omitempty"`
	Address   string    `gorm:"column:address" json:"address,omitempty"`
	About     string    `gorm:"column:about" json:"about,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminProfile) TableName() string { return "admin_profiles" }

func (p *AdminProfile) Prepare() {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = html.EscapeString(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
}
