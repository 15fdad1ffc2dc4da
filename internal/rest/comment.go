package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) PostComment(c *gin.Context) {
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
		"owner":    owner,
		"threadId": c.Param("threadId"),
	})

	added, err := h.Service.AddComment(c.Request.Context(), payload)
	if err != nil {
		c.JSON(getStatusCode(err), failResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedComment": added},
	})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, failResponse("user not authenticated"))
		return
	}

	err := h.Service.DeleteComment(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), owner)
	if err != nil {
		c.JSON(getStatusCode(err), failResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
