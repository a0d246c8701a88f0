package inbound

import (
	"errors"
	"net"
	"net/http"

	"github.com/shandysiswandi/folio/internal/contact/usecase"
	"github.com/shandysiswandi/folio/internal/pkg/goerror"
	"github.com/shandysiswandi/folio/internal/pkg/router"
)

// HTTPEndpoint exposes the contact form submission endpoint.
type HTTPEndpoint struct {
	uc uc
}

// SendMessage accepts a contact form submission.
// @Summary Send a contact message
// @Description Validates the submission and delivers it to the portfolio owner.
// @Tags Contact
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Retry key"
// @Param request body SendMessageRequest true "Contact payload"
// @Success 200 {object} SendMessageResponse "Message received"
// @Failure 400 {object} SendMessageResponse "Invalid request body"
// @Failure 409 {object} SendMessageResponse "Submission already in progress"
// @Failure 422 {object} SendMessageResponse "Validation error"
// @Failure 500 {object} SendMessageResponse "Delivery failed"
// @Router /send-message [post]
func (h *HTTPEndpoint) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := router.DecodeJSON(r.Body, &req); err != nil {
		writeFailure(w, err)
		return
	}

	if err := h.uc.SendMessage(r.Context(), usecase.SendMessageInput{
		Name:           req.Name,
		Email:          req.Email,
		Message:        req.Message,
		RemoteIP:       remoteIP(r),
		IdempotencyKey: r.Header.Get(HeaderIdempotencyKey),
	}); err != nil {
		writeFailure(w, err)
		return
	}

	router.WriteJSON(w, SendMessageResponse{Success: true, Message: usecase.MsgReceived}, http.StatusOK)
}

func writeFailure(w http.ResponseWriter, err error) {
	router.RecordError(w, err)

	resp := SendMessageResponse{Message: usecase.MsgSendFailed}
	code := http.StatusInternalServerError

	var gerr *goerror.Error
	if errors.As(err, &gerr) {
		code = gerr.StatusCode()
		resp.Message = gerr.Msg()
		if len(gerr.Fields()) > 0 {
			resp.Error = gerr.Fields()
		}
	}

	router.WriteJSON(w, resp, code)
}

func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
