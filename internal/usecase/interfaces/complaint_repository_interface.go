package interfaces

import (
	"context"

	"civic_pulse/internal/domain/entities"
)

// IComplaintRepository abstracts DynamoDB persistence for Complaint.
//
// Not-found is signalled with a zero-value entity (empty ID), not an error;
// the use case translates that into its own sentinel.

type IComplaintRepository interface {
	Create(ctx context.Context, c entities.Complaint) (entities.Complaint, error)
	GetByID(ctx context.Context, id string) (entities.Complaint, error)
	List(ctx context.Context) ([]entities.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status entities.ComplaintStatus) (entities.Complaint, error)
}
