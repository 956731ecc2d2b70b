package Controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"Garage/Models"
)

// PhotoController stores vehicle photos for a visit under the upload
// directory and keeps a thumbnail next to each original.
type PhotoController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewPhotoController(db *gorm.DB, uploadDir string) *PhotoController {
	return &PhotoController{DB: db, UploadDir: uploadDir}
}

// Upload saves one photo from a multipart form.
// POST /api/visits/:id/photos
func (pc *PhotoController) Upload(ctx *fiber.Ctx) error {
	visitID, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	var visit Models.Visit
	if err := pc.DB.First(&visit, uint(visitID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Visit not found",
				"message": "The specified visit does not exist",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Missing file",
			"message": "A photo upload is required",
		})
	}

	if err := os.MkdirAll(pc.UploadDir, 0755); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Storage error",
			"message": err.Error(),
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	id := uuid.New().String()
	fileName := id + ext
	thumbName := id + "_thumb" + ext
	fullPath := filepath.Join(pc.UploadDir, fileName)
	thumbPath := filepath.Join(pc.UploadDir, thumbName)

	if err := ctx.SaveFile(fileHeader, fullPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to store photo",
			"message": err.Error(),
		})
	}

	img, err := imaging.Open(fullPath, imaging.AutoOrientation(true))
	if err != nil {
		os.Remove(fullPath)
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid image",
			"message": err.Error(),
		})
	}
	thumb := imaging.Fit(img, 320, 320, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		os.Remove(fullPath)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to store thumbnail",
			"message": err.Error(),
		})
	}

	photo := Models.VisitPhoto{
		VisitID:       visit.ID,
		FileName:      fileName,
		ThumbFileName: thumbName,
		OriginalName:  fileHeader.Filename,
		Caption:       ctx.FormValue("caption"),
	}
	if err := pc.DB.Create(&photo).Error; err != nil {
		os.Remove(fullPath)
		os.Remove(thumbPath)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to save photo record",
			"message": err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(photo)
}

// List returns the photos of one visit.
// GET /api/visits/:id/photos
func (pc *PhotoController) List(ctx *fiber.Ctx) error {
	visitID, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	var photos []Models.VisitPhoto
	if err := pc.DB.Where("visit_id = ?", uint(visitID)).Order("id ASC").Find(&photos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}
	return ctx.JSON(photos)
}

// Delete removes one photo and its files.
// DELETE /api/photos/:id
func (pc *PhotoController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	var photo Models.VisitPhoto
	if err := pc.DB.First(&photo, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Photo not found",
				"message": fmt.Sprintf("No photo with ID %d", id),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	if err := pc.DB.Delete(&photo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete photo",
			"message": err.Error(),
		})
	}

	os.Remove(filepath.Join(pc.UploadDir, photo.FileName))
	os.Remove(filepath.Join(pc.UploadDir, photo.ThumbFileName))

	return ctx.JSON(fiber.Map{"message": "Photo deleted"})
}
