package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techstore/storefront-api/internal/core/domain"
)

const (
	collectionSettings = "settings"
	settingsDocID      = "site"
)

// SettingsRepository stores the site settings as a single well-known
// document.
type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(collectionSettings)}
}

type settingsDoc struct {
	ID                 string `bson:"_id"`
	SiteName           string `bson:"site_name"`
	SiteDescription    string `bson:"site_description"`
	ContactEmail       string `bson:"contact_email"`
	EnableRegistration bool   `bson:"enable_registration"`
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc settingsDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}

	return &domain.Settings{
		SiteName:           doc.SiteName,
		SiteDescription:    doc.SiteDescription,
		ContactEmail:       doc.ContactEmail,
		EnableRegistration: doc.EnableRegistration,
	}, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := settingsDoc{
		ID:                 settingsDocID,
		SiteName:           settings.SiteName,
		SiteDescription:    settings.SiteDescription,
		ContactEmail:       settings.ContactEmail,
		EnableRegistration: settings.EnableRegistration,
	}

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
