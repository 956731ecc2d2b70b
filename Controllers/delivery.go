package Controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Garage/Config"
	"Garage/Models"
	"Garage/Pdf"
	"Garage/Selection"
	"Garage/email"
)

// DeliveryController produces the printable outputs of a job card: inline
// PDF, the HTML print view and email delivery with the PDF attached.
type DeliveryController struct {
	DB     *gorm.DB
	Config Config.AppConfig
}

func NewDeliveryController(db *gorm.DB, cfg Config.AppConfig) *DeliveryController {
	return &DeliveryController{DB: db, Config: cfg}
}

// documentFor loads the visit, its document lines and the letterhead.
func (dc *DeliveryController) documentFor(visitID uint) (Models.Company, Models.Visit, []Models.VisitChecklistLine, error) {
	var visit Models.Visit
	if err := dc.DB.First(&visit, visitID).Error; err != nil {
		return Models.Company{}, visit, nil, err
	}

	var lines []Models.VisitChecklistLine
	err := dc.DB.Where("visit_id = ?", visit.ID).Scopes(orderLines).Find(&lines).Error
	if err != nil {
		return Models.Company{}, visit, nil, err
	}

	company, err := Models.GetCompany(dc.DB)
	if err != nil {
		return company, visit, nil, err
	}

	return company, visit, Selection.DocumentLines(lines), nil
}

func (dc *DeliveryController) parseVisitID(ctx *fiber.Ctx) (uint, bool) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
		return 0, false
	}
	return uint(id), true
}

// GetPDF streams the job card inline.
// GET /api/visits/:id/pdf
func (dc *DeliveryController) GetPDF(ctx *fiber.Ctx) error {
	id, ok := dc.parseVisitID(ctx)
	if !ok {
		return nil
	}

	company, visit, lines, err := dc.documentFor(id)
	if err != nil {
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

	pdfBytes, err := Pdf.BuildJobCard(company, visit, lines)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to build PDF",
			"message": err.Error(),
		})
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="jobcard_%d.pdf"`, visit.ID))
	return ctx.Send(pdfBytes)
}

// GetPrintView renders the HTML print page.
// GET /visits/:id/print
func (dc *DeliveryController) GetPrintView(ctx *fiber.Ctx) error {
	id, ok := dc.parseVisitID(ctx)
	if !ok {
		return nil
	}

	company, visit, lines, err := dc.documentFor(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Redirect("/", fiber.StatusFound)
		}
		return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return ctx.Render("print", fiber.Map{
		"Company": company,
		"Visit":   visit,
		"Lines":   lines,
	})
}

// SendEmail mails the job-card PDF to the customer address on the visit.
// A visit without an email address is a no-op success.
// POST /api/visits/:id/email
func (dc *DeliveryController) SendEmail(ctx *fiber.Ctx) error {
	id, ok := dc.parseVisitID(ctx)
	if !ok {
		return nil
	}

	company, visit, lines, err := dc.documentFor(id)
	if err != nil {
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

	toEmail := strings.TrimSpace(visit.Email)
	if toEmail == "" {
		return ctx.JSON(fiber.Map{
			"sent":    false,
			"message": "Visit has no customer email",
		})
	}

	if !dc.Config.SMTPConfigured() {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "Email not configured",
			"message": "SMTP settings are missing",
		})
	}

	pdfBytes, err := Pdf.BuildJobCard(company, visit, lines)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to build PDF",
			"message": err.Error(),
		})
	}

	jobNo := visit.JobNo
	if jobNo == "" {
		jobNo = fmt.Sprintf("%d", visit.ID)
	}

	emailConfig := Models.EmailConfig{
		SMTPServer: dc.Config.SMTPHost,
		SMTPPort:   dc.Config.SMTPPort,
		Username:   dc.Config.SMTPUser,
		Password:   dc.Config.SMTPPassword,
		FromEmail:  dc.Config.From(),
		FromName:   dc.Config.SMTPFromName,
		TLSEnabled: true,
	}
	message := Models.EmailMessage{
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Job Card %s", jobNo),
		Body:    fmt.Sprintf("Σας επισυνάπτουμε το Job Card σε PDF.\n\n%s", company.Name),
		Attachments: []Models.Attachment{
			{
				Filename: fmt.Sprintf("jobcard_%d.pdf", visit.ID),
				Data:     pdfBytes,
				MimeType: "application/pdf",
			},
		},
	}

	if err := email.SendEmail(emailConfig, message); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Failed to send email",
			"message": err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{"sent": true, "to": toEmail})
}
