package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"notice-calendar/internal/notice"
)

var errImageTooLarge = errors.New("image exceeds the upload size limit")

// processConvertReq reads the uploaded notice image from the multipart form.
// The form field is named "image".
func (h *handler) processConvertReq(c *gin.Context) (notice.ConvertInput, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return notice.ConvertInput{}, errors.New("multipart field 'image' is required")
	}
	if h.maxImageBytes > 0 && fileHeader.Size > h.maxImageBytes {
		return notice.ConvertInput{}, errImageTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return notice.ConvertInput{}, err
	}
	defer file.Close()

	// LimitReader guards against a forged Content-Length in the part header.
	limit := io.Reader(file)
	if h.maxImageBytes > 0 {
		limit = io.LimitReader(file, h.maxImageBytes+1)
	}
	image, err := io.ReadAll(limit)
	if err != nil {
		return notice.ConvertInput{}, err
	}
	if h.maxImageBytes > 0 && int64(len(image)) > h.maxImageBytes {
		return notice.ConvertInput{}, errImageTooLarge
	}

	return notice.ConvertInput{Image: image}, nil
}

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processScheduleReq binds and validates the schedule request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
