package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/workitem-tracker/internal/adapter/document"
	"github.com/wekeepgrowing/workitem-tracker/internal/domain/entity"
	"github.com/wekeepgrowing/workitem-tracker/internal/middleware/identity"
	"github.com/wekeepgrowing/workitem-tracker/internal/usecase/dto"
	"github.com/wekeepgrowing/workitem-tracker/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/workitem-tracker/pkg/errors"
	"go.uber.org/zap"
)

// ReportCreatedMessage is returned by GET /report.
const ReportCreatedMessage = "Report is created"

type WorkItemHandler struct {
	workItems interfaces.WorkItemUseCase
	reports   interfaces.ReportUseCase
	logger    *zap.Logger
}

func NewWorkItemHandler(workItems interfaces.WorkItemUseCase, reports interfaces.ReportUseCase, logger *zap.Logger) *WorkItemHandler {
	return &WorkItemHandler{
		workItems: workItems,
		reports:   reports,
		logger:    logger,
	}
}

// RegisterRoutes mounts the work item endpoints on g.
func (h *WorkItemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/report", h.SendReport)
	g.POST("/archive", h.Archive)
	g.POST("/changewi", h.Modify)
	g.GET("/retrieve", h.Retrieve)
	g.POST("/modify", h.LoadForEdit)
	g.POST("/work", h.Submit)
	g.POST("/claim", h.Claim)
}

// bind reads query and form values into req and validates it.
func bind(c echo.Context, req interface{}) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
		return apperrors.InvalidArgument("invalid query parameters", err)
	}
	if c.Request().Method != http.MethodGet {
		if err := c.Bind(req); err != nil {
			return apperrors.InvalidArgument("invalid form parameters", err)
		}
	}
	if err := c.Validate(req); err != nil {
		return apperrors.InvalidArgument(err.Error(), err)
	}
	return nil
}

func xmlResponse(c echo.Context, doc *document.Document) error {
	body, err := doc.Render()
	if err != nil {
		return apperrors.ToHTTPError(apperrors.NewAppError(apperrors.ErrInternal, "failed to render document", err))
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, []byte(body))
}

// SendReport emails the caller's active items as a spreadsheet.
func (h *WorkItemHandler) SendReport(c echo.Context) error {
	caller, err := identity.Caller(c)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	if err := h.reports.SendActiveReport(c.Request().Context(), caller); err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.String(http.StatusOK, ReportCreatedMessage)
}

// Archive flips the archived flag and echoes the id.
func (h *WorkItemHandler) Archive(c echo.Context) error {
	caller, err := identity.Caller(c)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	var req IDRequest
	if err := bind(c, &req); err != nil {
		return apperrors.ToHTTPError(err)
	}

	if err := h.workItems.Archive(c.Request().Context(), caller, req.ID); err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.String(http.StatusOK, req.ID)
}

// Modify updates description and status.
func (h *WorkItemHandler) Modify(c echo.Context) error {
	caller, err := identity.Caller(c)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	var req ModifyRequest
	if err := bind(c, &req); err != nil {
		return apperrors.ToHTTPError(err)
	}

	id, err := h.workItems.Modify(c.Request().Context(), caller, dto.ModifyWorkItemInput{
		ID:          req.ID,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.String(http.StatusOK, id)
}

// Retrieve renders the caller's active (type=active) or archived items.
func (h *WorkItemHandler) Retrieve(c echo.Context) error {
	caller, err := identity.Caller(c)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	var req RetrieveRequest
	if err := bind(c, &req); err != nil {
		return apperrors.ToHTTPError(err)
	}

	items, err := h.workItems.List(c.Request().Context(), caller, dto.RetrieveType(req.Type))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	h.logger.Debug("Retrieved work items",
		zap.String("caller", caller),
		zap.String("type", req.Type),
		zap.Int("count", len(items)),
	)
	return xmlResponse(c, document.FromWorkItems(items))
}

// LoadForEdit renders id, description and status of one item.
func (h *WorkItemHandler) LoadForEdit(c echo.Context) error {
	caller, err := identity.Caller(c)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	var req IDRequest
	if err := bind(c, &req); err != nil {
		return apperrors.ToHTTPError(err)
	}

	summary, err := h.workItems.LoadForEdit(c.Request().Context(), caller, req.ID)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return xmlResponse(c, document.FromSummary(summary))
}

// Submit creates a work item and returns its id.
func (h *WorkItemHandler) Submit(c echo.Context) error {
	caller, err := identity.Caller(c)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	var req SubmitRequest
	if err := bind(c, &req); err != nil {
		return apperrors.ToHTTPError(err)
	}

	id, err := h.workItems.Submit(c.Request().Context(), caller, dto.SubmitWorkItemInput{
		Date:        req.Date,
		Description: req.Description,
		Guide:       req.Guide,
		Status:      req.Status,
	})
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.String(http.StatusOK, id)
}

// Claim removes an item and renders it. Only one of several concurrent claims succeeds.
func (h *WorkItemHandler) Claim(c echo.Context) error {
	caller, err := identity.Caller(c)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	var req IDRequest
	if err := bind(c, &req); err != nil {
		return apperrors.ToHTTPError(err)
	}

	item, err := h.workItems.Claim(c.Request().Context(), caller, req.ID)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return xmlResponse(c, document.FromWorkItems([]*entity.WorkItem{item}))
}
