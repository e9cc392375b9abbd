package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"civic_pulse/internal/domain/entities"
)

func TestFromComplaint(t *testing.T) {
	t.Run("maps every field", func(t *testing.T) {
		lat, lon := -23.55, -46.63
		created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
		c := entities.Complaint{
			ID:          "b7c2",
			Group:       "group1",
			Title:       "Pothole",
			Description: "Deep pothole",
			Lat:         &lat,
			Lon:         &lon,
			Risk:        3,
			PhotoPath:   "/uploads/1-2.png",
			Status:      entities.ComplaintStatusInProgress,
			CreatedAt:   created,
		}

		got := FromComplaint(c)
		if got.ID != "b7c2" || got.Title != "Pothole" || got.Risk != 3 {
			t.Fatalf("FromComplaint() = %+v", got)
		}
		if got.Status != "In Progress" {
			t.Fatalf("FromComplaint() status = %q, want In Progress", got.Status)
		}
		if got.Photo == nil || *got.Photo != "/uploads/1-2.png" {
			t.Fatalf("FromComplaint() photo = %v", got.Photo)
		}
		if !got.CreatedAt.Equal(created) {
			t.Fatalf("FromComplaint() createdAt = %v, want %v", got.CreatedAt, created)
		}
	})

	t.Run("serializes missing photo and location as null", func(t *testing.T) {
		got := FromComplaint(entities.Complaint{ID: "a1", Status: entities.ComplaintStatusPending})

		raw, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		for _, want := range []string{`"photo":null`, `"lat":null`, `"lon":null`} {
			if !strings.Contains(string(raw), want) {
				t.Fatalf("Marshal() = %s, want it to contain %s", raw, want)
			}
		}
	})
}

func TestFromComplaints(t *testing.T) {
	t.Run("empty input is an empty array, not null", func(t *testing.T) {
		raw, err := json.Marshal(FromComplaints(nil))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(raw) != "[]" {
			t.Fatalf("Marshal() = %s, want []", raw)
		}
	})

	t.Run("preserves the input order", func(t *testing.T) {
		got := FromComplaints([]entities.Complaint{{ID: "c2"}, {ID: "c1"}})
		if len(got) != 2 || got[0].ID != "c2" || got[1].ID != "c1" {
			t.Fatalf("FromComplaints() = %+v", got)
		}
	})
}
