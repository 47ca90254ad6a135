package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds the preferences body. Validation of the value
// itself happens in the use case, so an empty body is passed through.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
