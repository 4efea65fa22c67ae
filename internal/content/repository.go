package content

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artloko1-gif/MastersCatering/internal/db"
)

// The settings collection holds exactly one document. Projects and inquiries
// carry inline image payloads and get a document each, which keeps every
// document well under Mongo's 16MB cap no matter how many photos accumulate.
const settingsDocID = "site"

type settingsDoc struct {
	ID          string `bson:"_id"`
	SiteContent `bson:",inline"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type MongoRepository struct {
	client *mongo.Client
	cols   *db.Collections
}

func NewMongoRepository(client *mongo.Client, cols *db.Collections) *MongoRepository {
	return &MongoRepository{client: client, cols: cols}
}

// Load reconstructs the aggregate from the settings document plus the full
// contents of the projects and inquiries collections. ok is false when no
// settings document has ever been published.
func (r *MongoRepository) Load(ctx context.Context) (SiteContent, bool, error) {
	var doc settingsDoc
	if err := r.cols.Settings.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return SiteContent{}, false, nil
		}
		return SiteContent{}, false, fmt.Errorf("load settings: %w", err)
	}
	content := doc.SiteContent

	projects, err := r.loadProjects(ctx)
	if err != nil {
		return SiteContent{}, false, err
	}
	content.Projects = projects

	inquiries, err := r.loadInquiries(ctx)
	if err != nil {
		return SiteContent{}, false, err
	}
	content.Inquiries = inquiries

	return content, true, nil
}

func (r *MongoRepository) loadProjects(ctx context.Context) ([]PortfolioItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.cols.Projects.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]PortfolioItem, 0)
	for cursor.Next(ctx) {
		var p PortfolioItem
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		items = append(items, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return items, nil
}

func (r *MongoRepository) loadInquiries(ctx context.Context) ([]Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.cols.Inquiries.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("load inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]Inquiry, 0)
	for cursor.Next(ctx) {
		var inq Inquiry
		if err := cursor.Decode(&inq); err != nil {
			return nil, fmt.Errorf("decode inquiry: %w", err)
		}
		items = append(items, inq)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("load inquiries: %w", err)
	}
	return items, nil
}

// Publish writes the whole aggregate in one transaction: replace the
// settings document, upsert every project and inquiry, delete documents that
// are no longer part of the aggregate. Either everything commits or the
// remote store is left untouched.
func (r *MongoRepository) Publish(ctx context.Context, content SiteContent) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		doc := settingsDoc{
			ID:          settingsDocID,
			SiteContent: content,
			UpdatedAt:   time.Now().UTC(),
		}
		replaceOpts := options.Replace().SetUpsert(true)
		if _, err := r.cols.Settings.ReplaceOne(sc, bson.M{"_id": settingsDocID}, doc, replaceOpts); err != nil {
			return nil, fmt.Errorf("publish settings: %w", err)
		}

		projectIDs := make([]string, 0, len(content.Projects))
		for i, p := range content.Projects {
			p.Position = i
			projectIDs = append(projectIDs, p.ID)
			if _, err := r.cols.Projects.ReplaceOne(sc, bson.M{"_id": p.ID}, p, replaceOpts); err != nil {
				return nil, fmt.Errorf("publish project %s: %w", p.ID, err)
			}
		}
		if _, err := r.cols.Projects.DeleteMany(sc, bson.M{"_id": bson.M{"$nin": projectIDs}}); err != nil {
			return nil, fmt.Errorf("prune projects: %w", err)
		}

		inquiryIDs := make([]string, 0, len(content.Inquiries))
		for _, inq := range content.Inquiries {
			inquiryIDs = append(inquiryIDs, inq.ID)
			if _, err := r.cols.Inquiries.ReplaceOne(sc, bson.M{"_id": inq.ID}, inq, replaceOpts); err != nil {
				return nil, fmt.Errorf("publish inquiry %s: %w", inq.ID, err)
			}
		}
		if _, err := r.cols.Inquiries.DeleteMany(sc, bson.M{"_id": bson.M{"$nin": inquiryIDs}}); err != nil {
			return nil, fmt.Errorf("prune inquiries: %w", err)
		}

		return nil, nil
	})
	return err
}

func (r *MongoRepository) SaveInquiry(ctx context.Context, inq Inquiry) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.cols.Inquiries.ReplaceOne(ctx, bson.M{"_id": inq.ID}, inq, opts); err != nil {
		return fmt.Errorf("save inquiry %s: %w", inq.ID, err)
	}
	return nil
}

func (r *MongoRepository) DeleteInquiry(ctx context.Context, id string) error {
	if _, err := r.cols.Inquiries.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete inquiry %s: %w", id, err)
	}
	return nil
}

func (r *MongoRepository) DeleteProject(ctx context.Context, id string) error {
	if _, err := r.cols.Projects.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}
