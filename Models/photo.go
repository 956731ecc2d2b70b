package Models

import (
	"gorm.io/gorm"
)

// VisitPhoto records one uploaded photo for a visit. Files live on disk
// under the configured upload directory; only the stored names are kept.
type VisitPhoto struct {
	gorm.Model
	VisitID       uint   `json:"visit_id" gorm:"not null;index"`
	FileName      string `json:"file_name" gorm:"size:255;not null"`
	ThumbFileName string `json:"thumb_file_name" gorm:"size:255;not null"`
	OriginalName  string `json:"original_name" gorm:"size:255"`
	Caption       string `json:"caption" gorm:"size:500"`
}
