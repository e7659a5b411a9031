package gateway

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/nekogravitycat/shareit-backend/internal/booking"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/response"
)

// maxBodyBytes bounds the request bodies the gateway buffers.
const maxBodyBytes = 1 << 20

// validBody checks the JSON body against T and restores it for the proxy.
func validBody[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: "request body too large"})
				return
			}
			response.BadRequest(c, "invalid request body", err)
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var dto T
		if err := binding.JSON.BindBody(body, &dto); err != nil {
			response.BadRequest(c, "invalid request body", err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// validQuery checks the query string against T.
func validQuery[T any](message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto T
		if err := c.ShouldBindQuery(&dto); err != nil {
			response.BadRequest(c, message, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func validID() gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri request.ByIDRequest
		if err := c.ShouldBindUri(&uri); err != nil {
			response.BadRequest(c, "invalid request", err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func validPage() gin.HandlerFunc {
	return validQuery[request.PageParams](request.InvalidPageMessage)
}

func validState() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := booking.ParseState(c.Query("state")); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
