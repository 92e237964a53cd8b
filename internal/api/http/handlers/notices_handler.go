package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notice-board/internal/api/dto"
	"github.com/spec-kit/notice-board/internal/auth"
	"github.com/spec-kit/notice-board/internal/domain"
	"github.com/spec-kit/notice-board/internal/service"
	apperrors "github.com/spec-kit/notice-board/pkg/util"
)

// NoticesHandler manages notice endpoints.
type NoticesHandler struct {
	service   *service.NoticeService
	validator *RequestValidator
}

// NewNoticesHandler constructs handler.
func NewNoticesHandler(noticeService *service.NoticeService, validator *RequestValidator) *NoticesHandler {
	return &NoticesHandler{service: noticeService, validator: validator}
}

// ListNotices GET /api/notices.
func (h *NoticesHandler) ListNotices(c *fiber.Ctx) error {
	notices, err := h.service.List(c.UserContext(), c.Query("department"), c.Query("date"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewNoticeList(notices))
}

// CreateNotice POST /api/notices.
func (h *NoticesHandler) CreateNotice(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	input, err := h.parseNotice(c)
	if err != nil {
		return err
	}

	notice, err := h.service.Create(c.UserContext(), *principal, input)
	if err != nil {
		return err
	}
	resp := dto.NewNoticeResponse(notice)
	return c.Status(fiber.StatusCreated).JSON(dto.NoticeMutationResponse{
		Message: "Notice created successfully",
		Notice:  &resp,
	})
}

// UpdateNotice PUT /api/notices/:id. An unknown id still answers 200 without
// a notice body.
func (h *NoticesHandler) UpdateNotice(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	id, err := noticeID(c)
	if err != nil {
		return err
	}
	input, err := h.parseNotice(c)
	if err != nil {
		return err
	}

	notice, err := h.service.Update(c.UserContext(), *principal, id, input)
	if err != nil {
		return err
	}
	out := dto.NoticeMutationResponse{Message: "Notice updated successfully"}
	if notice != nil {
		resp := dto.NewNoticeResponse(notice)
		out.Notice = &resp
	}
	return c.JSON(out)
}

// DeleteNotice DELETE /api/notices/:id. Deleting an unknown id succeeds.
func (h *NoticesHandler) DeleteNotice(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	id, err := noticeID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Delete(c.UserContext(), *principal, id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Notice deleted successfully"})
}

// ListDepartments GET /api/departments.
func (h *NoticesHandler) ListDepartments(c *fiber.Ctx) error {
	return c.JSON(dto.DepartmentsResponse{Departments: h.service.Departments()})
}

func (h *NoticesHandler) parseNotice(c *fiber.Ctx) (service.NoticeWriteInput, error) {
	var req dto.NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return service.NoticeWriteInput{}, domain.NewValidationError("body", "invalid JSON payload")
	}
	if err := h.validator.Validate(&req); err != nil {
		return service.NoticeWriteInput{}, err
	}
	return service.NoticeWriteInput{
		Title:      req.Title,
		Content:    req.Content,
		Department: req.Department,
		Date:       req.Date,
	}, nil
}

func noticeID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "id must be a positive integer")
	}
	return int64(id), nil
}
