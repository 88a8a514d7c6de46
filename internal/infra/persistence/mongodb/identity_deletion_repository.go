package mongodb

import (
	"context"
	"time"

	"coffeeshop/internal/domain/constants"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// identityDeletionRepository implements the repository.IdentityDeletionRepository interface.
type identityDeletionRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewIdentityDeletionRepository is the constructor for identityDeletionRepository.
func NewIdentityDeletionRepository(db *mongo.Database) repository.IdentityDeletionRepository {
	return &identityDeletionRepository{
		coll: db.Collection(constants.CollectionIdentityDeletions),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create records a new intent and fills in its key and timestamps.
func (repo *identityDeletionRepository) Create(ctx context.Context, deletion *entity.IdentityDeletion) error {
	now := repo.now()
	deletionM := fromIdentityDeletionDomain(deletion)
	deletionM.ID = primitive.NewObjectID()
	deletionM.CreatedAt = now
	deletionM.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, deletionM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record identity deletion")
	}

	deletion.ID = deletionM.ID.Hex()
	deletion.CreatedAt = now
	deletion.UpdatedAt = now

	return nil
}

// FindByID retrieves an intent by its key.
func (repo *identityDeletionRepository) FindByID(ctx context.Context, id string) (*entity.IdentityDeletion, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var deletionM model.IdentityDeletionModel
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&deletionM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrIdentityDeletionNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity deletion by ID")
	}

	return toIdentityDeletionDomain(&deletionM), nil
}

// FindByStatus lists intents in any of the given states, oldest first.
func (repo *identityDeletionRepository) FindByStatus(ctx context.Context, statuses ...entity.IdentityDeletionStatus) ([]*entity.IdentityDeletion, error) {
	filter := bson.D{}
	if len(statuses) > 0 {
		values := make(bson.A, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		filter = bson.D{{Key: "status", Value: bson.D{{Key: "$in", Value: values}}}}
	}

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity deletions")
	}
	defer cursor.Close(ctx)

	var deletionModels []*model.IdentityDeletionModel
	if err := cursor.All(ctx, &deletionModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode identity deletions")
	}

	deletions := make([]*entity.IdentityDeletion, 0, len(deletionModels))
	for _, deletionM := range deletionModels {
		deletions = append(deletions, toIdentityDeletionDomain(deletionM))
	}

	return deletions, nil
}

// UpdateStatus stores status, attempts and last error, and refreshes UpdatedAt.
func (repo *identityDeletionRepository) UpdateStatus(ctx context.Context, deletion *entity.IdentityDeletion) error {
	oid, err := parseObjectID(deletion.ID)
	if err != nil {
		return err
	}

	now := repo.now()
	res, err := repo.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: string(deletion.Status)},
			{Key: "attempts", Value: deletion.Attempts},
			{Key: "lastError", Value: deletion.LastError},
			{Key: "updatedAt", Value: now},
		}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update identity deletion")
	}
	if res.MatchedCount == 0 {
		return repository.ErrIdentityDeletionNotFound
	}

	deletion.UpdatedAt = now

	return nil
}

func toIdentityDeletionDomain(data *model.IdentityDeletionModel) *entity.IdentityDeletion {
	if data == nil {
		return nil
	}

	return &entity.IdentityDeletion{
		ID:        data.ID.Hex(),
		UserID:    data.UserID,
		UID:       data.UID,
		Status:    entity.IdentityDeletionStatus(data.Status),
		Attempts:  data.Attempts,
		LastError: data.LastError,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromIdentityDeletionDomain(data *entity.IdentityDeletion) *model.IdentityDeletionModel {
	if data == nil {
		return nil
	}

	return &model.IdentityDeletionModel{
		UserID:    data.UserID,
		UID:       data.UID,
		Status:    string(data.Status),
		Attempts:  data.Attempts,
		LastError: data.LastError,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
