package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/verification"
)

type shareClaims struct {
	ApplicationID string `json:"application_id"`
	jwt.RegisteredClaims
}

// ShareHandler issues short-lived share links for an application's
// verification report so scholarship committees outside the system can
// review the result without an account.
type ShareHandler struct {
	svc             *verification.Service
	secret          []byte
	frontendBaseURL string
}

func NewShareHandler(svc *verification.Service, secret []byte, frontendBaseURL string) *ShareHandler {
	return &ShareHandler{
		svc:             svc,
		secret:          secret,
		frontendBaseURL: strings.TrimRight(frontendBaseURL, "/"),
	}
}

type generateShareLinkReq struct {
	ExpiresInHours int `json:"expires_in_hours"`
}

// GenerateShareLink: POST /api/v1/applications/{id}/verification-share (protected)
func (h *ShareHandler) GenerateShareLink(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	if len(h.secret) == 0 {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "share secret not configured"})
		return
	}

	var body generateShareLinkReq
	_ = decodeLenient(r, &body)
	// 1..168 hours so links cannot be minted already expired or immortal
	if body.ExpiresInHours < 1 || body.ExpiresInHours > 168 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "expires_in_hours must be between 1 and 168"})
		return
	}

	// confirm the application exists before signing anything
	if _, err := h.svc.GetVerificationStatus(r.Context(), appID); err != nil {
		writeServiceError(w, err)
		return
	}

	exp := time.Now().Add(time.Duration(body.ExpiresInHours) * time.Hour)
	claims := shareClaims{
		ApplicationID: appID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to sign share token"})
		return
	}

	url := fmt.Sprintf("%s/verification-report/%s?token=%s", h.frontendBaseURL, appID, signed)
	writeJSON(w, http.StatusOK, map[string]any{
		"shareable_url": url,
		"valid_until":   exp,
	})
}

func (h *ShareHandler) validateToken(r *http.Request, appID string) (*shareClaims, error) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" || len(h.secret) == 0 {
		return nil, errors.New("missing token")
	}
	parsed, err := jwt.ParseWithClaims(tokenStr, &shareClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := parsed.Claims.(*shareClaims)
	if !ok || claims.ApplicationID != appID {
		return nil, errors.New("token does not cover this application")
	}
	return claims, nil
}

// SharedReport: GET /api/v1/verification-report/{id}?token=... (public)
func (h *ShareHandler) SharedReport(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	claims, err := h.validateToken(r, appID)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "This verification link is invalid or has expired."})
		return
	}
	summary, err := h.svc.GetVerificationStatus(r.Context(), appID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"report":      summary,
		"valid_until": claims.ExpiresAt.Time,
	})
}

// SharedReportQRCode: GET /api/v1/verification-report/{id}/qrcode?token=... (public)
func (h *ShareHandler) SharedReportQRCode(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	if _, err := h.validateToken(r, appID); err != nil {
		http.Error(w, "This verification link is invalid or has expired.", http.StatusUnauthorized)
		return
	}
	url := fmt.Sprintf("%s/verification-report/%s?token=%s", h.frontendBaseURL, appID, r.URL.Query().Get("token"))
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
