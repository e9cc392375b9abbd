package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"civic_pulse/internal/domain/entities"
	"civic_pulse/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrComplaintNotFound     = errors.New("complaint not found")
	ErrInvalidComplaintID    = errors.New("invalid complaint id")
	ErrInvalidStatus         = errors.New("invalid complaint status")
	ErrInvalidComplaintImage = errors.New("invalid complaint image")
)

// PhotoUpload carries a multipart file stream already opened at the HTTP
// boundary. Filename is only an extension hint.
type PhotoUpload struct {
	Reader   io.Reader
	Filename string
}

// SubmitComplaintCommand is the normalized submission input. The HTTP layer
// resolves the multipart-vs-JSON body shapes before building it; at most one
// of Upload and PhotoDataURL is set.
type SubmitComplaintCommand struct {
	Title        string
	Description  string
	Group        string
	Lat          *float64
	Lon          *float64
	Risk         int // 0 when the client supplied nothing
	Upload       *PhotoUpload
	PhotoDataURL string
}

// IComplaintUseCase exposes the complaint pipeline operations.
//
//   - POST  /api/complaints            => Submit()
//   - GET   /api/complaints            => List()
//   - GET   /api/complaints/:id        => GetByID()
//   - PATCH /api/complaints/:id/status => UpdateStatus()

type IComplaintUseCase interface {
	Submit(ctx context.Context, cmd SubmitComplaintCommand) (entities.Complaint, error)
	List(ctx context.Context) ([]entities.Complaint, error)
	GetByID(ctx context.Context, id string) (entities.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Complaint, error)
}

type ComplaintUseCase struct {
	repo       interfaces.IComplaintRepository
	photos     interfaces.IPhotoStore
	classifier interfaces.IClassifierGateway

	// retainRejected keeps photos of classifier-rejected submissions on
	// disk (audit trail). Disable to reclaim space on rejection.
	retainRejected bool
}

var _ IComplaintUseCase = (*ComplaintUseCase)(nil)

func NewComplaintUseCase(
	repo interfaces.IComplaintRepository,
	photos interfaces.IPhotoStore,
	classifier interfaces.IClassifierGateway,
	retainRejected bool,
) *ComplaintUseCase {
	return &ComplaintUseCase{
		repo:           repo,
		photos:         photos,
		classifier:     classifier,
		retainRejected: retainRejected,
	}
}

// Submit runs the full submission pipeline: store the photo when present,
// classify it, resolve the risk level and persist the complaint.
//
// A submission without any photo input is allowed. A malformed photoBase64
// payload is dropped, not rejected: the complaint is saved without a photo.
// Only an explicit "invalid" classification aborts the submission.
func (u *ComplaintUseCase) Submit(ctx context.Context, cmd SubmitComplaintCommand) (entities.Complaint, error) {
	photoPath, err := u.storePhoto(ctx, cmd)
	if err != nil {
		log.Printf("[complaint][usecase] photo store failed err=%v", err)
		return entities.Complaint{}, err
	}

	classification, err := u.classifyPhoto(ctx, photoPath)
	if err != nil {
		return entities.Complaint{}, err
	}

	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		title = "No title"
	}
	group := strings.TrimSpace(cmd.Group)
	if group == "" {
		group = entities.DefaultGroup
	}

	c := entities.Complaint{
		ID:          uuid.NewString(),
		Group:       group,
		Title:       title,
		Description: strings.TrimSpace(cmd.Description),
		Lat:         cmd.Lat,
		Lon:         cmd.Lon,
		Risk:        ResolveRiskLevel(classification, cmd.Risk),
		PhotoPath:   photoPath,
		Status:      entities.ComplaintStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[complaint][usecase] repository create failed complaint_id=%s err=%v", c.ID, err)
		return entities.Complaint{}, err
	}
	log.Printf("[complaint][usecase] submit success complaint_id=%s risk=%d photo=%q", created.ID, created.Risk, created.PhotoPath)
	return created, nil
}

// storePhoto persists whichever photo variant the command carries and
// returns its public relative path, or "" when the submission has no usable
// image.
func (u *ComplaintUseCase) storePhoto(ctx context.Context, cmd SubmitComplaintCommand) (string, error) {
	switch {
	case cmd.Upload != nil:
		return u.photos.StoreUpload(ctx, cmd.Upload.Reader, cmd.Upload.Filename)
	case cmd.PhotoDataURL != "":
		path, err := u.photos.StoreDataURL(ctx, cmd.PhotoDataURL)
		if errors.Is(err, interfaces.ErrInvalidDataURL) {
			// Silent degradation: keep the complaint, drop the photo.
			log.Printf("[complaint][usecase] dropping malformed photoBase64 payload")
			return "", nil
		}
		return path, err
	default:
		return "", nil
	}
}

// classifyPhoto invokes the classifier once for a stored photo. Any gateway
// failure degrades to a nil classification so the risk fallback applies; an
// explicit invalid verdict aborts the submission.
func (u *ComplaintUseCase) classifyPhoto(ctx context.Context, photoPath string) (*entities.Classification, error) {
	if photoPath == "" || u.classifier == nil {
		return nil, nil
	}

	absPath, err := u.photos.AbsolutePath(photoPath)
	if err != nil {
		log.Printf("[complaint][usecase] cannot resolve photo path %q err=%v", photoPath, err)
		return nil, nil
	}

	result, err := u.classifier.Classify(ctx, absPath)
	if err != nil {
		log.Printf("[complaint][usecase] classifier unavailable photo=%q err=%v", photoPath, err)
		return nil, nil
	}

	if result.Invalid() {
		log.Printf("[complaint][usecase] classifier rejected image photo=%q confidence=%.3f", photoPath, result.Confidence)
		if !u.retainRejected {
			if err := u.photos.Remove(photoPath); err != nil {
				log.Printf("[complaint][usecase] failed removing rejected photo %q err=%v", photoPath, err)
			}
		}
		return nil, ErrInvalidComplaintImage
	}

	return &result, nil
}

// List returns every complaint, newest first. Unbounded: expected volume is
// small and the admin dashboard renders the full set.
func (u *ComplaintUseCase) List(ctx context.Context) ([]entities.Complaint, error) {
	return u.repo.List(ctx)
}

func (u *ComplaintUseCase) GetByID(ctx context.Context, id string) (entities.Complaint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Complaint{}, ErrInvalidComplaintID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Complaint{}, err
	}
	if c.ID == "" {
		return entities.Complaint{}, ErrComplaintNotFound
	}
	return c, nil
}

// UpdateStatus overwrites the status of an existing complaint. The value
// must be a known lifecycle stage; transitions are not required to move
// forward.
func (u *ComplaintUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Complaint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Complaint{}, ErrInvalidComplaintID
	}
	st, ok := entities.ParseComplaintStatus(status)
	if !ok {
		return entities.Complaint{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		log.Printf("[complaint][usecase] status update failed complaint_id=%s err=%v", id, err)
		return entities.Complaint{}, err
	}
	if updated.ID == "" {
		return entities.Complaint{}, ErrComplaintNotFound
	}
	log.Printf("[complaint][usecase] status update success complaint_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}
