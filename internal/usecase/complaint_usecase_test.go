package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"civic_pulse/internal/domain/entities"
	"civic_pulse/internal/usecase/interfaces"
	mock_interfaces "civic_pulse/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSubmitMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIComplaintRepository, *mock_interfaces.MockIPhotoStore, *mock_interfaces.MockIClassifierGateway) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIComplaintRepository(ctrl),
		mock_interfaces.NewMockIPhotoStore(ctrl),
		mock_interfaces.NewMockIClassifierGateway(ctrl)
}

func TestComplaintUseCase_Submit(t *testing.T) {
	t.Run("classifier risk wins", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		photos.EXPECT().StoreUpload(gomock.Any(), gomock.Any(), "garbage.jpg").Return("/uploads/1-2.jpg", nil)
		photos.EXPECT().AbsolutePath("/uploads/1-2.jpg").Return("/tmp/uploads/1-2.jpg", nil)
		cls.EXPECT().Classify(gomock.Any(), "/tmp/uploads/1-2.jpg").Return(entities.Classification{PredictedClass: "Moderate", RiskScore: 2, Confidence: 0.83}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Complaint{})).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) {
				if c.Risk != 2 {
					t.Fatalf("expected classifier risk 2, got %d", c.Risk)
				}
				if c.Status != entities.ComplaintStatusPending {
					t.Fatalf("expected Pending status, got %s", c.Status)
				}
				if c.PhotoPath != "/uploads/1-2.jpg" {
					t.Fatalf("unexpected photo path %q", c.PhotoPath)
				}
				if c.ID == "" || c.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamp: %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.Submit(context.Background(), SubmitComplaintCommand{
			Title:  "Garbage",
			Risk:   3,
			Upload: &PhotoUpload{Reader: strings.NewReader("img"), Filename: "garbage.jpg"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Title != "Garbage" {
			t.Fatalf("unexpected title %q", res.Title)
		}
	})

	t.Run("invalid image rejects submission without persisting", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		photos.EXPECT().StoreUpload(gomock.Any(), gomock.Any(), "cat.png").Return("/uploads/9-9.png", nil)
		photos.EXPECT().AbsolutePath("/uploads/9-9.png").Return("/tmp/uploads/9-9.png", nil)
		cls.EXPECT().Classify(gomock.Any(), "/tmp/uploads/9-9.png").Return(entities.Classification{PredictedClass: "Invalid", RiskScore: 0}, nil)
		// note: repo.Create must not be called

		_, err := uc.Submit(context.Background(), SubmitComplaintCommand{
			Title:  "Garbage",
			Upload: &PhotoUpload{Reader: strings.NewReader("img"), Filename: "cat.png"},
		})
		if !errors.Is(err, ErrInvalidComplaintImage) {
			t.Fatalf("expected ErrInvalidComplaintImage, got %v", err)
		}
	})

	t.Run("rejected photo removed when retention disabled", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, false)

		photos.EXPECT().StoreUpload(gomock.Any(), gomock.Any(), "cat.png").Return("/uploads/9-9.png", nil)
		photos.EXPECT().AbsolutePath("/uploads/9-9.png").Return("/tmp/uploads/9-9.png", nil)
		cls.EXPECT().Classify(gomock.Any(), "/tmp/uploads/9-9.png").Return(entities.Classification{PredictedClass: "invalid"}, nil)
		photos.EXPECT().Remove("/uploads/9-9.png").Return(nil)

		_, err := uc.Submit(context.Background(), SubmitComplaintCommand{
			Upload: &PhotoUpload{Reader: strings.NewReader("img"), Filename: "cat.png"},
		})
		if !errors.Is(err, ErrInvalidComplaintImage) {
			t.Fatalf("expected ErrInvalidComplaintImage, got %v", err)
		}
	})

	t.Run("classifier unavailable falls back to client risk", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		photos.EXPECT().StoreUpload(gomock.Any(), gomock.Any(), "dump.jpg").Return("/uploads/3-3.jpg", nil)
		photos.EXPECT().AbsolutePath("/uploads/3-3.jpg").Return("/tmp/uploads/3-3.jpg", nil)
		cls.EXPECT().Classify(gomock.Any(), "/tmp/uploads/3-3.jpg").Return(entities.Classification{}, interfaces.ErrClassifierUnavailable)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) {
				if c.Risk != 3 {
					t.Fatalf("expected client risk 3, got %d", c.Risk)
				}
				return c, nil
			},
		)

		_, err := uc.Submit(context.Background(), SubmitComplaintCommand{
			Title:  "Illegal Dumping",
			Risk:   3,
			Upload: &PhotoUpload{Reader: strings.NewReader("img"), Filename: "dump.jpg"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("classifier unavailable and no client risk defaults to 1", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		photos.EXPECT().StoreUpload(gomock.Any(), gomock.Any(), "x.jpg").Return("/uploads/4-4.jpg", nil)
		photos.EXPECT().AbsolutePath("/uploads/4-4.jpg").Return("/tmp/uploads/4-4.jpg", nil)
		cls.EXPECT().Classify(gomock.Any(), "/tmp/uploads/4-4.jpg").Return(entities.Classification{}, interfaces.ErrClassifierUnavailable)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) {
				if c.Risk != 1 {
					t.Fatalf("expected default risk 1, got %d", c.Risk)
				}
				return c, nil
			},
		)

		_, err := uc.Submit(context.Background(), SubmitComplaintCommand{
			Upload: &PhotoUpload{Reader: strings.NewReader("img"), Filename: "x.jpg"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no photo skips store and classifier", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) {
				if c.PhotoPath != "" {
					t.Fatalf("expected no photo, got %q", c.PhotoPath)
				}
				if c.Title != "No title" {
					t.Fatalf("expected default title, got %q", c.Title)
				}
				if c.Group != entities.DefaultGroup {
					t.Fatalf("expected default group, got %q", c.Group)
				}
				return c, nil
			},
		)

		_, err := uc.Submit(context.Background(), SubmitComplaintCommand{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("malformed data url degrades to photoless complaint", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		photos.EXPECT().StoreDataURL(gomock.Any(), "data:text/plain;base64,xxxx").Return("", interfaces.ErrInvalidDataURL)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) {
				if c.PhotoPath != "" {
					t.Fatalf("expected photo dropped, got %q", c.PhotoPath)
				}
				return c, nil
			},
		)

		_, err := uc.Submit(context.Background(), SubmitComplaintCommand{
			Title:        "Garbage",
			PhotoDataURL: "data:text/plain;base64,xxxx",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("photo store failure surfaces", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		photos.EXPECT().StoreUpload(gomock.Any(), gomock.Any(), "x.jpg").Return("", errors.New("disk full"))

		_, err := uc.Submit(context.Background(), SubmitComplaintCommand{
			Upload: &PhotoUpload{Reader: strings.NewReader("img"), Filename: "x.jpg"},
		})
		if err == nil || err.Error() != "disk full" {
			t.Fatalf("expected disk full error, got %v", err)
		}
	})

	t.Run("nil classifier gateway means fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		photos := mock_interfaces.NewMockIPhotoStore(ctrl)
		uc := NewComplaintUseCase(repo, photos, nil, true)

		photos.EXPECT().StoreUpload(gomock.Any(), gomock.Any(), "x.jpg").Return("/uploads/5-5.jpg", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) {
				if c.Risk != 2 {
					t.Fatalf("expected client risk 2, got %d", c.Risk)
				}
				return c, nil
			},
		)

		_, err := uc.Submit(context.Background(), SubmitComplaintCommand{
			Risk:   2,
			Upload: &PhotoUpload{Reader: strings.NewReader("img"), Filename: "x.jpg"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository create error surfaces", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Complaint{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), SubmitComplaintCommand{Title: "Garbage"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestComplaintUseCase_List(t *testing.T) {
	ctrl, repo, photos, cls := newSubmitMocks(t)
	defer ctrl.Finish()
	uc := NewComplaintUseCase(repo, photos, cls, true)

	now := time.Now().UTC()
	want := []entities.Complaint{
		{ID: "c3", CreatedAt: now},
		{ID: "c2", CreatedAt: now.Add(-time.Minute)},
		{ID: "c1", CreatedAt: now.Add(-time.Hour)},
	}
	repo.EXPECT().List(gomock.Any()).Return(want, nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ID != "c3" || got[2].ID != "c1" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestComplaintUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil, nil, true)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidComplaintID) {
			t.Fatalf("expected ErrInvalidComplaintID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Complaint{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrComplaintNotFound) {
			t.Fatalf("expected ErrComplaintNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Complaint{ID: "c1", Title: "Garbage"}, nil)

		c, err := uc.GetByID(context.Background(), " c1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "c1" {
			t.Fatalf("unexpected complaint: %+v", c)
		}
	})
}

func TestComplaintUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil, nil, true)
		_, err := uc.UpdateStatus(context.Background(), "", "Completed")
		if !errors.Is(err, ErrInvalidComplaintID) {
			t.Fatalf("expected ErrInvalidComplaintID, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil, nil, true)
		_, err := uc.UpdateStatus(context.Background(), "c1", "Archived")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		repo.EXPECT().UpdateStatus(gomock.Any(), "missing", entities.ComplaintStatusCompleted).Return(entities.Complaint{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "missing", "Completed")
		if !errors.Is(err, ErrComplaintNotFound) {
			t.Fatalf("expected ErrComplaintNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, photos, cls := newSubmitMocks(t)
		defer ctrl.Finish()
		uc := NewComplaintUseCase(repo, photos, cls, true)

		repo.EXPECT().UpdateStatus(gomock.Any(), "c1", entities.ComplaintStatusInProgress).
			Return(entities.Complaint{ID: "c1", Status: entities.ComplaintStatusInProgress}, nil)

		c, err := uc.UpdateStatus(context.Background(), "c1", "In Progress")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.ComplaintStatusInProgress {
			t.Fatalf("unexpected status: %s", c.Status)
		}
	})
}
