package response

import (
	"time"

	"civic_pulse/internal/domain/entities"
)

// ComplaintResponse is the wire representation of a complaint. Photo is null
// when the submission carried no usable image; lat/lon are null when the
// submitter gave no location.
type ComplaintResponse struct {
	ID          string    `json:"id"`
	Group       string    `json:"group"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Lat         *float64  `json:"lat"`
	Lon         *float64  `json:"lon"`
	Risk        int       `json:"risk"`
	Photo       *string   `json:"photo"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromComplaint(c entities.Complaint) ComplaintResponse {
	var photo *string
	if c.PhotoPath != "" {
		p := c.PhotoPath
		photo = &p
	}
	return ComplaintResponse{
		ID:          c.ID,
		Group:       c.Group,
		Title:       c.Title,
		Description: c.Description,
		Lat:         c.Lat,
		Lon:         c.Lon,
		Risk:        c.Risk,
		Photo:       photo,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}

func FromComplaints(cs []entities.Complaint) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromComplaint(c))
	}
	return out
}
