package Models

import (
	"time"

	"gorm.io/gorm"
)

// PartMemory remembers the last part code saved for a checklist item on a
// given vehicle model, keyed by the normalized model string. At most one
// row exists per (model_key, category, item_name).
type PartMemory struct {
	gorm.Model
	ModelKey  string `json:"model_key" gorm:"size:255;not null;uniqueIndex:idx_part_memory_key"`
	Category  string `json:"category" gorm:"size:255;not null;uniqueIndex:idx_part_memory_key"`
	ItemName  string `json:"item_name" gorm:"size:255;not null;uniqueIndex:idx_part_memory_key"`
	PartsCode string `json:"parts_code" gorm:"size:100;not null"`
}

// UpsertPartMemory overwrites the remembered code for the key triple, or
// inserts a new row when none exists. An empty model key is a silent skip.
func UpsertPartMemory(db *gorm.DB, modelKey, category, itemName, partsCode string) error {
	if modelKey == "" || partsCode == "" {
		return nil
	}
	var existing PartMemory
	err := db.Where("model_key = ? AND category = ? AND item_name = ?", modelKey, category, itemName).
		First(&existing).Error
	if err == nil {
		existing.PartsCode = partsCode
		existing.UpdatedAt = time.Now()
		return db.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(&PartMemory{
		ModelKey:  modelKey,
		Category:  category,
		ItemName:  itemName,
		PartsCode: partsCode,
	}).Error
}

// LookupPartMemory returns every remembered code for one model, keyed by
// (category, item_name). Used read-only when rendering a visit.
func LookupPartMemory(db *gorm.DB, modelKey string) (map[[2]string]string, error) {
	mem := make(map[[2]string]string)
	if modelKey == "" {
		return mem, nil
	}
	var rows []PartMemory
	if err := db.Where("model_key = ?", modelKey).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		mem[[2]string{r.Category, r.ItemName}] = r.PartsCode
	}
	return mem, nil
}
