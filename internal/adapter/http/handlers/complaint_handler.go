package handlers

import (
	"errors"
	"log"
	"net/http"

	request "civic_pulse/internal/adapter/http/dto/request"
	response "civic_pulse/internal/adapter/http/dto/response"
	"civic_pulse/internal/usecase"
	"civic_pulse/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidComplaintPayload = pkg.NewDomainErrorSimple("INVALID_COMPLAINT_INPUT", "Invalid complaint payload", http.StatusBadRequest)

// ComplaintHandler handles HTTP requests for citizen complaints. All
// decisions live in the use case; this layer only parses bodies and maps
// errors to status codes.

type ComplaintHandler struct {
	usecase usecase.IComplaintUseCase
}

func NewComplaintHandler(uc usecase.IComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{usecase: uc}
}

type statusUpdateBody struct {
	Status string `json:"status"`
}

// CreateComplaint godoc
//
//	@Summary	Submit a complaint
//	@Accept		json,mpfd
//	@Produce	json
//	@Success	201	{object}	map[string]any
//	@Failure	400	{object}	pkg.HTTPError
//	@Failure	500	{object}	pkg.HTTPError
//	@Router		/complaints [post]
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	sub, err := request.ResolveSubmission(c)
	if err != nil {
		log.Printf("[complaint][handler] invalid submission err=%v", err)
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	cmd := usecase.SubmitComplaintCommand{
		Title:       sub.Title,
		Description: sub.Description,
		Group:       sub.Group,
		Lat:         sub.Lat,
		Lon:         sub.Lon,
		Risk:        sub.Risk,
	}

	switch p := sub.Photo.(type) {
	case request.PhotoFile:
		f, err := p.File.Open()
		if err != nil {
			log.Printf("[complaint][handler] cannot open uploaded photo err=%v", err)
			c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
			return
		}
		defer f.Close()
		cmd.Upload = &usecase.PhotoUpload{Reader: f, Filename: p.File.Filename}
	case request.PhotoDataURL:
		cmd.PhotoDataURL = p.DataURL
	}

	created, err := h.usecase.Submit(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[complaint][handler] submit failed err=%v", err)
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"complaint": response.FromComplaint(created),
	})
}

// ListComplaints godoc
//
//	@Summary	List all complaints, newest first
//	@Produce	json
//	@Success	200	{array}	response.ComplaintResponse
//	@Router		/complaints [get]
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[complaint][handler] list failed err=%v", err)
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaints(list))
}

// GetComplaint godoc
//
//	@Summary	Fetch one complaint
//	@Produce	json
//	@Param		id	path		string	true	"complaint id"
//	@Success	200	{object}	response.ComplaintResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/complaints/{id} [get]
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaint, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaint(complaint))
}

// UpdateComplaintStatus godoc
//
//	@Summary	Overwrite the status of a complaint
//	@Accept		json
//	@Produce	json
//	@Param		id	path		string	true	"complaint id"
//	@Success	200	{object}	response.ComplaintResponse
//	@Failure	400	{object}	pkg.HTTPError
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateComplaintStatus(c *gin.Context) {
	var body statusUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		log.Printf("[complaint][handler] status update failed id=%s err=%v", c.Param("id"), err)
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaint(updated))
}

func mapComplaintError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidComplaintImage):
		return pkg.NewDomainErrorSimple("INVALID_COMPLAINT_IMAGE", "Invalid complaint image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidComplaintID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrComplaintNotFound):
		return pkg.NewDomainErrorSimple("COMPLAINT_NOT_FOUND", "Not found", http.StatusNotFound)
	default:
		// Internal admin tool: the raw error message is surfaced.
		return pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
