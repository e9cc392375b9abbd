package request

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxPhotoBytes bounds a single multipart photo upload (5 MiB).
const MaxPhotoBytes = 5 << 20

var (
	ErrMalformedBody = errors.New("malformed complaint payload")
	ErrPhotoTooLarge = errors.New("photo exceeds the upload size limit")
)

// PhotoInput is the tagged union of the two photo shapes a submission may
// carry: a multipart file stream or a base64 data URL. Nil means no photo.
type PhotoInput interface {
	photoInput()
}

type PhotoFile struct {
	File *multipart.FileHeader
}

type PhotoDataURL struct {
	DataURL string
}

func (PhotoFile) photoInput()    {}
func (PhotoDataURL) photoInput() {}

// ComplaintSubmission is the normalized submission payload, resolved from
// either body shape before anything reaches the use case.
type ComplaintSubmission struct {
	Title       string
	Description string
	Group       string
	Lat         *float64
	Lon         *float64
	Risk        int
	Photo       PhotoInput
}

// complaintJSONBody accepts the loosely typed JSON shape submitted by the
// browser clients: lat/lon/risk arrive as numbers or strings.
type complaintJSONBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Group       string `json:"group"`
	Lat         any    `json:"lat"`
	Lon         any    `json:"lon"`
	Risk        any    `json:"risk"`
	PhotoBase64 string `json:"photoBase64"`
}

// ResolveSubmission parses the request into a ComplaintSubmission,
// dispatching on the content type: multipart form (optional "photo" file
// field) or JSON (optional "photoBase64" data URL).
func ResolveSubmission(c *gin.Context) (ComplaintSubmission, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return resolveMultipart(c)
	}
	return resolveJSON(c)
}

func resolveMultipart(c *gin.Context) (ComplaintSubmission, error) {
	sub := ComplaintSubmission{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Group:       c.PostForm("group"),
		Lat:         parseOptionalFloat(c.PostForm("lat")),
		Lon:         parseOptionalFloat(c.PostForm("lon")),
		Risk:        parseOptionalInt(c.PostForm("risk")),
	}

	fh, err := c.FormFile("photo")
	switch {
	case err == nil:
		if fh.Size > MaxPhotoBytes {
			return ComplaintSubmission{}, ErrPhotoTooLarge
		}
		sub.Photo = PhotoFile{File: fh}
	case errors.Is(err, http.ErrMissingFile):
		// form-encoded submissions may still carry a data URL field
		if b64 := c.PostForm("photoBase64"); b64 != "" {
			sub.Photo = PhotoDataURL{DataURL: b64}
		}
	default:
		return ComplaintSubmission{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	return sub, nil
}

func resolveJSON(c *gin.Context) (ComplaintSubmission, error) {
	var body complaintJSONBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return ComplaintSubmission{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	sub := ComplaintSubmission{
		Title:       body.Title,
		Description: body.Description,
		Group:       body.Group,
		Lat:         coerceFloat(body.Lat),
		Lon:         coerceFloat(body.Lon),
		Risk:        coerceInt(body.Risk),
	}
	if body.PhotoBase64 != "" {
		sub.Photo = PhotoDataURL{DataURL: body.PhotoBase64}
	}
	return sub, nil
}

func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptionalInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// coerceFloat accepts the duck-typed lat/lon values: JSON numbers or
// numeric strings. Anything else counts as absent.
func coerceFloat(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		return parseOptionalFloat(t)
	default:
		return nil
	}
}

func coerceInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		return parseOptionalInt(t)
	default:
		return 0
	}
}
