package models

// SiteDescription is the singleton row of the description table holding
// the bilingual site copy.
type SiteDescription struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	HeaderOneAr string `gorm:"column:header_one_ar" json:"header_one_ar"`
	HeaderOneEn string `gorm:"column:header_one_en" json:"header_one_en"`
	HeaderTwoAr string `gorm:"column:header_two_ar" json:"header_two_ar"`
	HeaderTwoEn string `gorm:"column:header_two_en" json:"header_two_en"`
	ParagraphAr string `gorm:"column:paragraph_ar" json:"paragraph_ar"`
	ParagraphEn string `gorm:"column:paragraph_en" json:"paragraph_en"`
}

func (SiteDescription) TableName() string { return "description" }
