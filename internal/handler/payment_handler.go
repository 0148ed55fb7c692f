package handler

import (
	"net/http"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

// CreateCheckoutSession адреса возврата строятся от заголовка Origin
func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req CheckoutSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.paymentService.Initiate(r.Context(), owner, domain.CheckoutRequest{
		Amount:       float64(req.Amount),
		Currency:     req.Currency,
		Description:  req.Description,
		ClientID:     req.ClientID,
		ProjectID:    req.ProjectID,
		Metadata:     req.Metadata,
		RedirectBase: r.Header.Get("Origin"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CheckoutSessionResponse{
		URL:       session.URL,
		SessionID: session.SessionID,
	})
}

func (h *Handler) GetCheckoutStatus(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	status, err := h.paymentService.Reconcile(r.Context(), owner, r.PathValue("session_id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CheckoutStatusResponse{
		Status:        status.Status,
		PaymentStatus: status.PaymentStatus,
		AmountTotal:   status.AmountTotal,
		Currency:      status.Currency,
	})
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	payments, err := h.paymentService.List(r.Context(), owner)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, domainPaymentDetailsToHTTP(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	payment, err := h.paymentService.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPaymentDetailsToHTTP(payment))
}
