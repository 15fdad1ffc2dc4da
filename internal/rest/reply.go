package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

func (h *ReplyHandler) PostReply(c *gin.Context) {
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
	payload = payload.Merge(domain.Payload{
		"owner":     owner,
		"threadId":  c.Param("threadId"),
		"commentId": c.Param("commentId"),
	})

	added, err := h.Service.AddReply(c.Request.Context(), payload)
	if err != nil {
		c.JSON(getStatusCode(err), failResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedReply": added},
	})
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, failResponse("user not authenticated"))
		return
	}

	err := h.Service.DeleteReply(
		c.Request.Context(),
		c.Param("threadId"),
		c.Param("commentId"),
		c.Param("replyId"),
		owner,
	)
	if err != nil {
		c.JSON(getStatusCode(err), failResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
