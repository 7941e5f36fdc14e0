package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quantumcareers/backend/pkg/model"
)

// mongoMirror mirrors store writes into a Mongo database. Collections:
// resumes and recommendations are upserted by user_id, tests and results are
// plain inserts.
type mongoMirror struct {
	db *mongo.Database
}

// NewMongoMirror wraps a connected database as a Mirror.
func NewMongoMirror(db *mongo.Database) Mirror {
	return &mongoMirror{db: db}
}

func (m *mongoMirror) UpsertResume(ctx context.Context, analysis model.ResumeAnalysis) error {
	_, err := m.db.Collection("resumes").UpdateOne(ctx,
		bson.M{"user_id": analysis.UserID},
		bson.M{"$set": analysis},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *mongoMirror) UpsertRecommendations(ctx context.Context, userID string, recs []model.JobRecommendation) error {
	_, err := m.db.Collection("recommendations").UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"user_id": userID, "recs": recs, "ts": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *mongoMirror) InsertSession(ctx context.Context, session model.TestSession) error {
	_, err := m.db.Collection("tests").InsertOne(ctx, session)
	return err
}

func (m *mongoMirror) SetSessionStatus(ctx context.Context, sessionID string, status model.SessionStatus) error {
	_, err := m.db.Collection("tests").UpdateOne(ctx,
		bson.M{"id": sessionID},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}

func (m *mongoMirror) InsertResult(ctx context.Context, result model.TestResult) error {
	_, err := m.db.Collection("results").InsertOne(ctx, result)
	return err
}

func (m *mongoMirror) FindResume(ctx context.Context, userID string) (*model.ResumeAnalysis, error) {
	var analysis model.ResumeAnalysis
	err := m.db.Collection("resumes").FindOne(ctx, bson.M{"user_id": userID}).Decode(&analysis)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (m *mongoMirror) FindResults(ctx context.Context, userID string) ([]model.TestResult, error) {
	cursor, err := m.db.Collection("results").Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.TestResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
