package routes

import (
	"civic_pulse/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathComplaints = "/complaints"

func addComplaintRoutes(rg *gin.RouterGroup, complaintHandler *handlers.ComplaintHandler) {
	complaints := rg.Group(PathComplaints)
	{
		complaints.POST("", complaintHandler.CreateComplaint)
		complaints.GET("", complaintHandler.ListComplaints)
		complaints.GET("/:id", complaintHandler.GetComplaint)
		complaints.PATCH("/:id/status", complaintHandler.UpdateComplaintStatus)
	}
}
