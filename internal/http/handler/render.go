package handler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"campusdocs/internal/model"
	"campusdocs/internal/service"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// CertificateResponse is the body of a created certificate.
type CertificateResponse struct {
	ID            string `json:"id"`
	RecipientName string `json:"recipientName"`
	CourseTitle   string `json:"courseTitle"`
	Date          string `json:"date"`
	Rank          int    `json:"rank"`
	ImageURL      string `json:"imageUrl"`
}

// BulkCertificateItem is one entry of a bulk certificate response.
type BulkCertificateItem struct {
	RecipientName string `json:"recipientName"`
	CourseTitle   string `json:"courseTitle"`
	Date          string `json:"date"`
	Rank          int    `json:"rank"`
	ImageURL      string `json:"imageUrl,omitempty"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
}

// BulkCertificateResponse is the body of POST /certificate/bulk.
type BulkCertificateResponse struct {
	Message      string                `json:"message"`
	Certificates []BulkCertificateItem `json:"certificates"`
}

// IDCardItem is one entry of an ID card batch response.
type IDCardItem struct {
	Name     string `json:"name"`
	FilePath string `json:"filePath,omitempty"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// IDCardResponse is the body of POST /id-cards.
type IDCardResponse struct {
	Message string       `json:"message"`
	IDCards []IDCardItem `json:"idCards"`
}

// InvitationResponse is the body of POST /invitation.
type InvitationResponse struct {
	Message         string `json:"message"`
	InvitationImage string `json:"invitationImage"`
}

func badBody(c *fiber.Ctx, msg string) error {
	return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", msg)
}

// itemError is the message reported for a failed batch item.
func itemError(err error) string {
	_, _, msg := classify(err)
	return msg
}

func rankOf(doc *model.RenderedDocument) int {
	if doc.Rank == nil {
		return 0
	}
	return *doc.Rank
}

// CreateCertificate renders one certificate.
//
// @Summary Generate a certificate
// @Tags render
// @Accept json
// @Produce json
// @Param body body model.CertificateRequest true "certificate"
// @Success 201 {object} CertificateResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /certificate [post]
func CreateCertificate(svc service.RenderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.CertificateRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return badBody(c, "request body must be a JSON object")
		}
		doc, err := svc.Certificate(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(CertificateResponse{
			ID:            doc.ID,
			RecipientName: doc.RecipientName,
			CourseTitle:   doc.EventName,
			Date:          doc.Date,
			Rank:          rankOf(doc),
			ImageURL:      doc.FilePath,
		})
	}
}

// CreateBulkCertificates renders a batch of certificates. One invalid item rejects
// the whole batch before anything is rendered; after that items fail independently.
//
// @Summary Generate certificates in bulk
// @Tags render
// @Accept json
// @Produce json
// @Param body body []model.CertificateRequest true "certificates"
// @Success 201 {object} BulkCertificateResponse
// @Failure 400 {object} errorPayload
// @Router /certificate/bulk [post]
func CreateBulkCertificates(svc service.RenderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reqs []model.CertificateRequest
		if err := json.Unmarshal(c.Body(), &reqs); err != nil || reqs == nil {
			return badBody(c, "request body must be a JSON array of certificates")
		}
		results, err := svc.BulkCertificates(c.UserContext(), reqs)
		if err != nil {
			return writeServiceError(c, err)
		}

		items := make([]BulkCertificateItem, len(results))
		ok := 0
		for i, res := range results {
			// reqs were normalized in place by validation
			item := BulkCertificateItem{
				RecipientName: reqs[i].RecipientName,
				CourseTitle:   reqs[i].CourseTitle,
				Date:          reqs[i].Date,
				Status:        statusSuccess,
			}
			if reqs[i].Rank != nil {
				item.Rank = *reqs[i].Rank
			}
			if res.Err != nil {
				item.Status = statusFailed
				item.Error = itemError(res.Err)
			} else {
				item.Date = res.Document.Date
				item.ImageURL = res.Document.FilePath
				ok++
			}
			items[i] = item
		}
		return c.Status(fiber.StatusCreated).JSON(BulkCertificateResponse{
			Message:      fmt.Sprintf("Generated %d of %d certificates", ok, len(items)),
			Certificates: items,
		})
	}
}

// CreateIDCards renders a batch of ID cards. Items are decoded and validated one by one,
// so a malformed item fails alone.
//
// @Summary Generate ID cards
// @Tags render
// @Accept json
// @Produce json
// @Param body body []model.IDCardRequest true "cards"
// @Success 200 {object} IDCardResponse
// @Failure 400 {object} errorPayload
// @Router /id-cards [post]
func CreateIDCards(svc service.RenderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw []json.RawMessage
		if err := json.Unmarshal(c.Body(), &raw); err != nil || len(raw) == 0 {
			return badBody(c, "request body must be a non-empty JSON array of ID cards")
		}

		reqs := make([]model.IDCardRequest, len(raw))
		decodeErr := make([]error, len(raw))
		valid := make([]model.IDCardRequest, 0, len(raw))
		index := make([]int, 0, len(raw))
		for i, item := range raw {
			if err := json.Unmarshal(item, &reqs[i]); err != nil {
				decodeErr[i] = (&model.ValidationError{Message: "is not a valid ID card object"}).AtIndex(i)
				continue
			}
			valid = append(valid, reqs[i])
			index = append(index, i)
		}

		items := make([]IDCardItem, len(raw))
		for i := range items {
			items[i] = IDCardItem{Name: reqs[i].Name.String(), Status: statusFailed}
			if decodeErr[i] != nil {
				items[i].Error = itemError(decodeErr[i])
			}
		}

		ok := 0
		if len(valid) > 0 {
			results, err := svc.IDCards(c.UserContext(), valid)
			if err != nil {
				return writeServiceError(c, err)
			}
			for j, res := range results {
				i := index[j]
				if res.Err != nil {
					items[i].Error = reindex(itemError(res.Err), j, i)
					continue
				}
				items[i].Status = statusSuccess
				items[i].FilePath = res.Document.FilePath
				ok++
			}
		}

		return c.Status(fiber.StatusOK).JSON(IDCardResponse{
			Message: fmt.Sprintf("Generated %d of %d ID cards", ok, len(items)),
			IDCards: items,
		})
	}
}

// reindex rewrites the batch position prefix of a message when malformed items
// were dropped before the batch reached the service.
func reindex(msg string, from, to int) string {
	if from == to {
		return msg
	}
	return strings.Replace(msg, fmt.Sprintf("[%d]", from), fmt.Sprintf("[%d]", to), 1)
}

// CreateInvitation renders one judge invitation letter. The image URL is absolute.
//
// @Summary Generate an invitation letter
// @Tags render
// @Accept json
// @Produce json
// @Param body body model.InvitationRequest true "invitation"
// @Success 201 {object} InvitationResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /invitation [post]
func CreateInvitation(svc service.RenderService, publicBaseURL string) fiber.Handler {
	base := strings.TrimRight(publicBaseURL, "/")
	return func(c *fiber.Ctx) error {
		var req model.InvitationRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return badBody(c, "request body must be a JSON object")
		}
		doc, err := svc.Invitation(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(InvitationResponse{
			Message:         "Invitation generated successfully",
			InvitationImage: base + doc.FilePath,
		})
	}
}
