package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/handlers"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/middleware"
)

// Deps carries the wired handlers and the auth secret into route
// registration.
type Deps struct {
	Verification *handlers.VerificationHandler
	Intake       *handlers.IntakeHandler
	Share        *handlers.ShareHandler
	JWTSecret    []byte
}

func Register(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS)
	r.Use(middleware.Logging)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	// Public shared verification reports (token required via query param)
	r.Get("/api/v1/verification-report/{id}", d.Share.SharedReport)
	r.Get("/api/v1/verification-report/{id}/qrcode", d.Share.SharedReportQRCode)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(d.JWTSecret))

		r.Post("/api/v1/applications", d.Intake.CreateApplication)
		r.Get("/api/v1/applications/{id}", d.Intake.GetApplication)
		r.Post("/api/v1/applications/{id}/documents", d.Intake.RegisterDocument)

		r.Post("/api/v1/applications/{id}/verify", d.Verification.VerifyAllDocuments)
		r.Post("/api/v1/applications/{id}/documents/{docID}/verify", d.Verification.VerifyDocument)
		r.Get("/api/v1/applications/{id}/verification-status", d.Verification.VerificationStatus)
		r.Get("/api/v1/applications/{id}/documents/{docID}/raw-text", d.Verification.RawText)

		r.Post("/api/v1/applications/{id}/verification-share", d.Share.GenerateShareLink)
	})

	return r
}
