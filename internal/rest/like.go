package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type LikeHandler struct {
	Service domain.CommentUsecase
}

func NewLikeHandler(svc domain.CommentUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// PutLike toggles the authenticated user's like on a comment.
func (h *LikeHandler) PutLike(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, failResponse("user not authenticated"))
		return
	}

	err := h.Service.LikeUnlikeComment(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), owner)
	if err != nil {
		c.JSON(getStatusCode(err), failResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
