package handlers

import (
	"time"

	subusecases "github.com/digitalcoban/coban/internal/application/subscription/usecases"
	"github.com/digitalcoban/coban/internal/domain/animal"
	"github.com/digitalcoban/coban/internal/domain/area"
	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	"github.com/digitalcoban/coban/internal/domain/user"
)

// UserResponse is the API representation of an account
type UserResponse struct {
	ID        uint      `json:"id"`
	UUID      string    `json:"uuid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SubscriptionResponse is the API representation of the subscription
// lifecycle state
type SubscriptionResponse struct {
	SID               string         `json:"sid"`
	Status            string         `json:"status"`
	AnimalCounts      map[string]int `json:"animal_counts"`
	MonthlyPrice      int64          `json:"monthly_price"`
	TrialStart        time.Time      `json:"trial_start"`
	TrialEnd          time.Time      `json:"trial_end"`
	InTrial           bool           `json:"in_trial"`
	NeedsPayment      bool           `json:"needs_payment"`
	SubscriptionStart *time.Time     `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time     `json:"subscription_end,omitempty"`
}

// AnimalResponse is the API representation of a tracked animal
type AnimalResponse struct {
	ID         uint      `json:"id"`
	SID        string    `json:"sid"`
	Name       string    `json:"name"`
	AnimalType string    `json:"animal_type"`
	QRCode     string    `json:"qr_code"`
	AreaID     *uint     `json:"area_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AreaResponse is the API representation of a grazing area
type AreaResponse struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

func fromCounts(counts billing.Counts) map[string]int {
	raw := make(map[string]int, len(counts))
	for animalType, count := range counts {
		raw[string(animalType)] = count
	}
	return raw
}

func toUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		UUID:      u.UUID(),
		Username:  u.Username(),
		Email:     u.Email().String(),
		Phone:     u.Phone(),
		Address:   u.Address(),
		CreatedAt: u.CreatedAt(),
	}
}

func toSubscriptionResponse(s *subscription.Subscription) *SubscriptionResponse {
	now := time.Now()
	return &SubscriptionResponse{
		SID:               s.SID(),
		Status:            s.Status().String(),
		AnimalCounts:      fromCounts(s.AnimalCounts()),
		MonthlyPrice:      s.MonthlyPrice(),
		TrialStart:        s.TrialStart(),
		TrialEnd:          s.TrialEnd(),
		InTrial:           s.IsInTrial(now),
		NeedsPayment:      s.NeedsPayment(now),
		SubscriptionStart: s.SubscriptionStart(),
		SubscriptionEnd:   s.SubscriptionEnd(),
	}
}

func toStatusResponse(r *subusecases.SubscriptionStatusResult) *SubscriptionResponse {
	return &SubscriptionResponse{
		SID:               r.SID,
		Status:            r.Status.String(),
		AnimalCounts:      fromCounts(r.AnimalCounts),
		MonthlyPrice:      r.MonthlyPrice,
		TrialStart:        r.TrialStart,
		TrialEnd:          r.TrialEnd,
		InTrial:           r.InTrial,
		NeedsPayment:      r.NeedsPayment,
		SubscriptionStart: r.SubscriptionStart,
		SubscriptionEnd:   r.SubscriptionEnd,
	}
}

func toAnimalResponse(a *animal.Animal) *AnimalResponse {
	return &AnimalResponse{
		ID:         a.ID(),
		SID:        a.SID(),
		Name:       a.Name(),
		AnimalType: string(a.Type()),
		QRCode:     a.QRCode(),
		AreaID:     a.AreaID(),
		CreatedAt:  a.CreatedAt(),
	}
}

func toAnimalResponses(animals []*animal.Animal) []*AnimalResponse {
	responses := make([]*AnimalResponse, 0, len(animals))
	for _, a := range animals {
		responses = append(responses, toAnimalResponse(a))
	}
	return responses
}

func toAreaResponse(a *area.Area) *AreaResponse {
	return &AreaResponse{
		ID:        a.ID(),
		SID:       a.SID(),
		Name:      a.Name(),
		Latitude:  a.Latitude(),
		Longitude: a.Longitude(),
		CreatedAt: a.CreatedAt(),
	}
}

func toAreaResponses(areas []*area.Area) []*AreaResponse {
	responses := make([]*AreaResponse, 0, len(areas))
	for _, a := range areas {
		responses = append(responses, toAreaResponse(a))
	}
	return responses
}
