package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
)

type ChallengeService struct {
	challengesRepo     repository.ChallengesRepositoryI
	participationsRepo repository.ParticipationsRepositoryI
}

func NewChallengeService(challengesRepo repository.ChallengesRepositoryI, participationsRepo repository.ParticipationsRepositoryI) *ChallengeService {
	if challengesRepo == nil || participationsRepo == nil {
		log.Fatal("on challenge service provided nil repos")
	}
	return &ChallengeService{
		challengesRepo:     challengesRepo,
		participationsRepo: participationsRepo,
	}
}

func (cs *ChallengeService) CreateChallenge(ctx context.Context, creatorID uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, errorvalues.ErrValidation
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	c := entity.Challenge{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GoalType:    req.GoalType,
		GoalTarget:  req.GoalTarget,
		EntryFee:    req.EntryFee,
		IsPublic:    isPublic,
		CreatorID:   creatorID,
	}
	id, err := cs.challengesRepo.Create(ctx, &c)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrValidation):
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	challenge, err := cs.challengesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenge, nil
}

func (cs *ChallengeService) ListChallenges(ctx context.Context, requesterID uuid.UUID) ([]*entity.ChallengeSummary, error) {
	challenges, err := cs.challengesRepo.ListVisible(ctx, requesterID)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenges, nil
}

func (cs *ChallengeService) GetChallenge(ctx context.Context, id, requesterID uuid.UUID) (*entity.ChallengeDetail, error) {
	challenge, err := cs.challengesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	participants, err := cs.participationsRepo.ListByChallenge(ctx, id)
	if err != nil {
		return nil, errors.New("participations repository error: " + err.Error())
	}
	if !challenge.IsPublic && challenge.CreatorID != requesterID {
		joined := false
		for _, p := range participants {
			if p.UserID == requesterID {
				joined = true
				break
			}
		}
		if !joined {
			return nil, errorvalues.ErrPrivateChallenge
		}
	}
	return &entity.ChallengeDetail{
		Challenge:    *challenge,
		Participants: participants,
	}, nil
}

func (cs *ChallengeService) JoinChallenge(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Participation, error) {
	challenge, err := cs.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	if !time.Now().Before(challenge.StartDate) {
		return nil, errorvalues.ErrChallengeStarted
	}
	participation, err := cs.participationsRepo.Create(ctx, userID, challengeID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyJoined), errors.Is(err, errorvalues.ErrChallengeNotFound):
			return nil, err
		}
		return nil, errors.New("participations repository error: " + err.Error())
	}
	return participation, nil
}

func (cs *ChallengeService) RecordProgress(ctx context.Context, challengeID, userID uuid.UUID, req *RecordProgressRequest) (*entity.ProgressRecord, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	challenge, err := cs.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	participation, err := cs.participationsRepo.GetByUserAndChallenge(ctx, userID, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParticipationNotFound) {
			return nil, err
		}
		return nil, errors.New("participations repository error: " + err.Error())
	}
	if !participation.HasPaid {
		return nil, errorvalues.ErrPaymentRequired
	}
	if req.Date.Before(challenge.StartDate) || req.Date.After(challenge.EndDate) {
		return nil, errorvalues.ErrDateOutOfRange
	}
	source := req.Source
	if source == "" {
		source = entity.SourceManual
	}
	record, err := cs.participationsRepo.UpsertProgress(ctx, &entity.ProgressRecord{
		ParticipationID: participation.ID,
		RecordDate:      req.Date,
		Value:           req.Value,
		Source:          source,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrParticipationNotFound) {
			return nil, err
		}
		return nil, errors.New("participations repository error: " + err.Error())
	}
	return record, nil
}

func (cs *ChallengeService) MarkPayment(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Participation, error) {
	participation, err := cs.participationsRepo.GetByUserAndChallenge(ctx, userID, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParticipationNotFound) {
			return nil, err
		}
		return nil, errors.New("participations repository error: " + err.Error())
	}
	if participation.HasPaid {
		return nil, errorvalues.ErrAlreadyPaid
	}
	err = cs.participationsRepo.MarkPaid(ctx, participation.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParticipationNotFound) {
			return nil, err
		}
		return nil, errors.New("participations repository error: " + err.Error())
	}
	participation.HasPaid = true
	return participation, nil
}
