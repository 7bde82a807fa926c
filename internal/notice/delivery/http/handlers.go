package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"notice-calendar/internal/notice"
	"notice-calendar/pkg/response"
)

// Convert godoc
// @Summary     Convert a notice image into calendar events
// @Description Runs the full pipeline: OCR on the uploaded photo, event field extraction, then one calendar event per extracted date. On an authorization failure the extracted record is returned so the client can re-authorize and call /schedule without re-uploading.
// @Tags        Notice
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Photographed notice (jpg/png)"
// @Success     200 {object} convertResp
// @Failure     400 {object} response.Resp "Empty image or no recognizable text"
// @Failure     401 {object} response.Resp "Calendar authorization required"
// @Failure     502 {object} response.Resp "Extraction or event creation failed"
// @Router      /api/v1/notices/convert [POST]
func (h *handler) Convert(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processConvertReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Convert(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Convert: %v", err)
		// Keep whatever the pipeline produced before it stopped so the
		// client can correct and retry from the right stage.
		response.ErrorWithStatus(c, mapErrorStatus(err), err, h.newConvertResp(output))
		return
	}

	response.OK(c, h.newConvertResp(output))
}

// Analyze godoc
// @Summary     Extract event fields from recognized text
// @Description Sends already-recognized notice text to the language model and returns the extracted event record without creating calendar events.
// @Tags        Notice
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Recognized notice text"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Extraction failed"
// @Router      /api/v1/notices/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.ErrorWithStatus(c, mapErrorStatus(err), err, nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Schedule godoc
// @Summary     Create calendar events from an event record
// @Description Materializes one calendar event per date in the record. Dates that fail to parse get a fallback start one week out; a failed event creation aborts the batch and returns the events created so far.
// @Tags        Notice
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Event record"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Calendar authorization required"
// @Failure     502 {object} response.Resp "Event creation failed"
// @Router      /api/v1/notices/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		if errors.Is(err, notice.ErrAuthorizationRequired) || errors.Is(err, notice.ErrEventCreateFailed) {
			response.ErrorWithStatus(c, mapErrorStatus(err), err, h.newScheduleResp(output))
			return
		}
		response.ErrorWithStatus(c, mapErrorStatus(err), err, nil)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
