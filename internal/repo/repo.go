// Package repo is the narrow persistence boundary for the application
// aggregate. The verification core only ever loads an application, loads
// one of its documents, and saves a document back.
package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/NeilAutriz/ISKOlarship-sub008/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrDocumentNotFound    = errors.New("document not found")
)

// ApplicationRepository abstracts persistence so the core has no direct
// database-client coupling.
type ApplicationRepository interface {
	LoadApplication(ctx context.Context, applicationID string) (*models.Application, error)
	LoadDocument(ctx context.Context, applicationID, documentID string) (*models.Document, error)
	SaveDocument(ctx context.Context, doc *models.Document) error
}

// GormRepository implements ApplicationRepository on gorm/postgres.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) LoadApplication(ctx context.Context, applicationID string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).Preload("Documents").Where("id = ?", applicationID).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load application %s: %w", applicationID, err)
	}
	return &app, nil
}

func (r *GormRepository) LoadDocument(ctx context.Context, applicationID, documentID string) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND application_id = ?", documentID, applicationID).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", documentID, err)
	}
	return &doc, nil
}

func (r *GormRepository) SaveDocument(ctx context.Context, doc *models.Document) error {
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return fmt.Errorf("save document %s: %w", doc.ID, err)
	}
	return nil
}

// CreateApplication and CreateDocument serve the intake handlers; the
// verification core never creates records.
func (r *GormRepository) CreateApplication(ctx context.Context, app *models.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (r *GormRepository) CreateDocument(ctx context.Context, doc *models.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}
