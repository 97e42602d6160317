package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/compare"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/config"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/db"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/handlers"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/ocr"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/refdata"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/repo"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/router"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/storage"
	"github.com/NeilAutriz/ISKOlarship-sub008/internal/verification"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gdb, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db init: ", err)
	}

	applications := repo.NewGormRepository(gdb)
	blobs := storage.NewSignedURLFetcher(cfg.StorageBaseURL)
	provider := ocr.NewVisionProvider(cfg.GoogleCredentials)
	if !provider.Available() {
		log.Println("OCR backend not configured; document verification will report unavailable")
	}

	engine := compare.NewEngine(refdata.NewResolver())
	svc := verification.NewService(applications, blobs, provider, engine)

	handler := router.Register(router.Deps{
		Verification: handlers.NewVerificationHandler(svc),
		Intake:       handlers.NewIntakeHandler(applications),
		Share:        handlers.NewShareHandler(svc, []byte(cfg.ShareTokenSecret), cfg.FrontendBaseURL),
		JWTSecret:    []byte(cfg.JWTSecret),
	})

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal("server: ", err)
	}
}
