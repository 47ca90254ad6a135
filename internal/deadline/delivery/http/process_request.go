package http

import (
	"github.com/gin-gonic/gin"
)

// processIndexReq binds the :index URI param.
func (h *handler) processIndexReq(c *gin.Context) (int, error) {
	var req indexReq
	if err := c.ShouldBindUri(&req); err != nil {
		return 0, errInvalidIndex
	}
	return req.Index, nil
}

// processUpdateReq binds the update body and the :index URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	idx, err := h.processIndexReq(c)
	if err != nil {
		return req, err
	}
	req.Index = idx
	return req, req.validate()
}
