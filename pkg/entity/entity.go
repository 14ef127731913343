package entity

import (
	"time"

	"github.com/google/uuid"
)

type GoalType string

const (
	GoalSteps      GoalType = "STEPS"
	GoalWorkouts   GoalType = "WORKOUTS"
	GoalMeditation GoalType = "MEDITATION"
	GoalCustom     GoalType = "CUSTOM"
)

type ProgressSource string

const (
	SourceManual      ProgressSource = "MANUAL"
	SourceAppleHealth ProgressSource = "APPLE_HEALTH"
	SourceGoogleFit   ProgressSource = "GOOGLE_FIT"
	SourceFitbit      ProgressSource = "FITBIT"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	WalletBalance int64     `json:"wallet_balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Challenge struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	GoalType    GoalType  `json:"goal_type"`
	GoalTarget  int       `json:"goal_target"`
	EntryFee    int64     `json:"entry_fee"`
	IsPublic    bool      `json:"is_public"`
	CreatorID   uuid.UUID `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ChallengeSummary is a list-view row: the challenge plus the bits the
// client renders on the card without a second request.
type ChallengeSummary struct {
	Challenge
	ParticipantCount int            `json:"participant_count"`
	Creator          CreatorSummary `json:"creator"`
}

type CreatorSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

type Participation struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ChallengeID uuid.UUID `json:"challenge_id"`
	HasPaid     bool      `json:"has_paid"`
	// Completed stays nil until the challenge ends and the outcome is resolved.
	Completed *bool     `json:"completed"`
	JoinedAt  time.Time `json:"joined_at"`
}

// ParticipantDetail nests a participant's progress for the challenge detail view.
type ParticipantDetail struct {
	Participation
	Username string           `json:"username"`
	Progress []ProgressRecord `json:"progress"`
}

type ChallengeDetail struct {
	Challenge
	Participants []ParticipantDetail `json:"participants"`
}

type ProgressRecord struct {
	ID              uuid.UUID      `json:"id"`
	ParticipationID uuid.UUID      `json:"participation_id"`
	RecordDate      time.Time      `json:"record_date"`
	Value           int            `json:"value"`
	Source          ProgressSource `json:"source"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Transaction is an append-only ledger row. Amount is signed: positive
// credits the wallet, negative debits it.
type Transaction struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Amount      int64      `json:"amount"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	ChallengeID *uuid.UUID `json:"challenge_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LeaderboardUser struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Points      int       `json:"points"`
	Rank        int       `json:"rank"`
}

// LeaderboardStanding pairs the stored entry with the rank derived from
// points at read time. The stored rank column is maintained by an external
// recompute job and can lag behind; the two are reported side by side.
type LeaderboardStanding struct {
	LeaderboardUser
	ActualRank int `json:"actual_rank"`
}
