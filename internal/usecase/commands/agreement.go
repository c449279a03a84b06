package commands

import (
	"context"
	"errors"
	"log/slog"

	"building-management/internal/domain/agreement"
	"building-management/internal/domain/user"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	"building-management/internal/pkg/clock"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/queries"
	"building-management/internal/usecase/shared"
)

type CreateAgreementRequest struct {
	UserName    string
	UserEmail   string
	ApartmentID string
	ApartmentNo string
	FloorNo     string
	BlockName   string
	Rent        float64
}

type AgreementCommands interface {
	Create(ctx context.Context, req CreateAgreementRequest) (string, error)
	// Transition applies an administrator decision and adjusts the tenant role
	// in the same unit of work.
	Transition(ctx context.Context, id, status string) (*queries.AgreementView, error)
	// RecordDecisionDate restamps the decision date of the current status.
	RecordDecisionDate(ctx context.Context, id, status string) (shared.UpdateCounts, error)
}

type agreementCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics Metrics
}

func NewAgreementCommands(uow shared.UnitOfWork, clk clock.Clock, metrics Metrics) AgreementCommands {
	return &agreementCommandsImpl{
		uow:     uow,
		clock:   clk,
		metrics: metrics,
	}
}

func (uc *agreementCommandsImpl) Create(ctx context.Context, req CreateAgreementRequest) (string, error) {
	email, err := user.NewEmail(req.UserEmail)
	if err != nil {
		return "", badRequest(err)
	}
	if _, err := docstore.ParseID(req.ApartmentID); err != nil {
		return "", errs.Mark(err, errs.ErrInvalidID)
	}

	apt, err := agreement.NewApartmentRef(req.ApartmentID, req.ApartmentNo, req.FloorNo, req.BlockName, req.Rent)
	if err != nil {
		return "", badRequest(err)
	}
	a, err := agreement.NewAgreement(email, req.UserName, apt, uc.clock.Now())
	if err != nil {
		return "", badRequest(err)
	}

	id, err := uc.uow.Repositories().Agreements().Create(ctx, a)
	if err != nil {
		return "", mapRepoErr(err, errs.ErrAgreementNotFound)
	}
	return id, nil
}

func (uc *agreementCommandsImpl) Transition(ctx context.Context, id, status string) (*queries.AgreementView, error) {
	to, err := agreement.NewDecision(status)
	if err != nil {
		return nil, badRequest(err)
	}

	var updated *agreement.Agreement
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Agreements().FindByID(ctx, id)
		if derr != nil {
			return mapRepoErr(derr, errs.ErrAgreementNotFound)
		}

		from, derr := a.Transition(to, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, errs.ErrInvalidTransition)
		}

		counts, derr := tx.Agreements().SaveDecision(ctx, a, from)
		if derr != nil {
			return mapRepoErr(derr, errs.ErrAgreementNotFound)
		}
		if counts.Matched == 0 {
			return errs.ErrTransitionConflict
		}

		if derr = uc.applyTenantRole(ctx, tx, a); derr != nil {
			return derr
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.RecordAgreementTransition(to.String())
	return toAgreementView(updated), nil
}

func (uc *agreementCommandsImpl) applyTenantRole(ctx context.Context, tx shared.Tx, a *agreement.Agreement) error {
	tenant := a.Tenant().Email
	current, err := tx.Users().FindByEmail(ctx, tenant)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.WarnContext(ctx, "agreement tenant has no user record", "agreement_id", a.ID(), "email", tenant.Value())
			return nil
		}
		return mapRepoErr(err, errs.ErrUserNotFound)
	}

	// Administrators keep their role whatever happens to their agreements.
	if current.Role() == user.RoleAdmin || current.Role() == a.TenantRole() {
		return nil
	}

	if err := tx.Users().UpdateRole(ctx, tenant, a.TenantRole()); err != nil {
		return mapRepoErr(err, errs.ErrUserNotFound)
	}
	return nil
}

func (uc *agreementCommandsImpl) RecordDecisionDate(ctx context.Context, id, status string) (shared.UpdateCounts, error) {
	decision, err := agreement.NewDecision(status)
	if err != nil {
		return shared.UpdateCounts{}, badRequest(err)
	}

	var counts shared.UpdateCounts
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Agreements().FindByID(ctx, id)
		if derr != nil {
			return mapRepoErr(derr, errs.ErrAgreementNotFound)
		}

		if derr = a.StampDecision(decision, uc.clock.Now()); derr != nil {
			if errors.Is(derr, agreement.ErrStatusMismatch) {
				return errs.Mark(derr, errs.ErrInvalidTransition)
			}
			return badRequest(derr)
		}

		counts, derr = tx.Agreements().SaveDecision(ctx, a, decision)
		if derr != nil {
			return mapRepoErr(derr, errs.ErrAgreementNotFound)
		}
		if counts.Matched == 0 {
			return errs.ErrTransitionConflict
		}
		return nil
	})
	if err != nil {
		return shared.UpdateCounts{}, err
	}
	return counts, nil
}

func toAgreementView(a *agreement.Agreement) *queries.AgreementView {
	apt := a.Apartment()
	return &queries.AgreementView{
		ID:           a.ID(),
		UserName:     a.Tenant().Name,
		UserEmail:    a.Tenant().Email.Value(),
		ApartmentID:  apt.ID,
		ApartmentNo:  apt.ApartmentNo,
		FloorNo:      apt.FloorNo,
		BlockName:    apt.BlockName,
		Rent:         apt.Rent,
		Status:       a.Status().String(),
		CreatedAt:    a.CreatedAt(),
		AcceptedDate: a.AcceptedDate(),
		RejectedDate: a.RejectedDate(),
	}
}
