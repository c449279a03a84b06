package repository

import (
	"context"

	"building-management/internal/domain/agreement"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	"building-management/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson"
)

type AgreementRepository struct {
	coll docstore.Collection
}

func NewAgreementRepository(coll docstore.Collection) *AgreementRepository {
	return &AgreementRepository{coll: coll}
}

func (r *AgreementRepository) Create(ctx context.Context, a *agreement.Agreement) (string, error) {
	doc := docstore.AgreementDoc{
		UserName:     a.Tenant().Name,
		UserEmail:    a.Tenant().Email.Value(),
		ApartmentID:  a.Apartment().ID,
		ApartmentNo:  a.Apartment().ApartmentNo,
		FloorNo:      a.Apartment().FloorNo,
		BlockName:    a.Apartment().BlockName,
		Rent:         a.Apartment().Rent,
		Status:       a.Status().String(),
		CreatedAt:    a.CreatedAt(),
		AcceptedDate: a.AcceptedDate(),
		RejectedDate: a.RejectedDate(),
	}

	id, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", infra.WrapRepoErr("failed to insert agreement", err)
	}
	return id, nil
}

func (r *AgreementRepository) FindByID(ctx context.Context, id string) (*agreement.Agreement, error) {
	oid, err := docstore.ParseID(id)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid agreement id", err)
	}

	var doc docstore.AgreementDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to find agreement", err)
	}

	a, err := toAgreementDomain(doc)
	if err != nil {
		return nil, infra.WrapRepoErr("stored agreement is malformed", err, infra.KindDBFailure)
	}
	return a, nil
}

func (r *AgreementRepository) SaveDecision(ctx context.Context, a *agreement.Agreement, expected agreement.Status) (shared.UpdateCounts, error) {
	oid, err := docstore.ParseID(a.ID())
	if err != nil {
		return shared.UpdateCounts{}, infra.WrapRepoErr("invalid agreement id", err)
	}

	filter := bson.M{"_id": oid, "status": expected.String()}
	update := bson.M{"$set": bson.M{
		"status":       a.Status().String(),
		"acceptedDate": a.AcceptedDate(),
		"rejectedDate": a.RejectedDate(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update, false)
	if err != nil {
		return shared.UpdateCounts{}, infra.WrapRepoErr("failed to update agreement status", err)
	}
	return shared.UpdateCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (r *AgreementRepository) DeleteSettleable(ctx context.Context, id string) (int64, error) {
	oid, err := docstore.ParseID(id)
	if err != nil {
		return 0, infra.WrapRepoErr("invalid agreement id", err)
	}

	deleted, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "status": agreement.StatusAccepted.String()})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete settled agreement", err)
	}
	return deleted, nil
}
