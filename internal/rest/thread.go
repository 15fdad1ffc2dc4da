package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// ThreadHandler represent the httphandler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// PostThread will create a thread owned by the authenticated user
func (h *ThreadHandler) PostThread(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, failResponse("user not authenticated"))
		return
	}

	var payload domain.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, failResponse(err.Error()))
		return
	}
	payload = payload.Merge(domain.Payload{"owner": owner})

	added, err := h.Service.AddThread(c.Request.Context(), payload)
	if err != nil {
		c.JSON(getStatusCode(err), failResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedThread": added},
	})
}

// GetThreadDetail returns the thread with its comments, like counts and
// nested replies
func (h *ThreadHandler) GetThreadDetail(c *gin.Context) {
	threadID := c.Param("threadId")

	thread, err := h.Service.GetThreadDetail(c.Request.Context(), threadID)
	if err != nil {
		c.JSON(getStatusCode(err), failResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"thread": thread},
	})
}
