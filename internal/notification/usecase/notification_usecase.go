package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"firebase.google.com/go/v4/messaging"

	"notifyhub-backend/internal/notification/repository"
	tokenrepo "notifyhub-backend/internal/token/repository"
)

// ErrSenderUnavailable is returned when a send targets real tokens but no push
// gateway was configured at startup.
var ErrSenderUnavailable = errors.New("push gateway not configured")

// Sender is the push-gateway surface the usecase needs. *fcm.Client satisfies
// it; tests substitute a fake.
type Sender interface {
	Multicast(ctx context.Context, tokens []string, title, body string, data map[string]string) (*messaging.BatchResponse, error)
}

// SendInput is a validated send request. Title and Body are required by the
// delivery layer before it gets here.
type SendInput struct {
	Title  string
	Body   string
	Data   map[string]string
	Tokens []string
}

// SendOutcome is the gateway's result for one token.
type SendOutcome struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SendResult carries the multicast counts and per-token detail. NoTargets is
// set when there was no registered token to address; no gateway call happened.
type SendResult struct {
	NoTargets    bool
	SuccessCount int
	FailureCount int
	Responses    []SendOutcome
}

// NotificationUsecase defines the push send operation
type NotificationUsecase interface {
	Send(ctx context.Context, input SendInput) (*SendResult, error)
}

type notificationUsecase struct {
	sender    Sender
	tokenRepo tokenrepo.TokenRepository
	logRepo   repository.LogRepository
}

// NewNotificationUsecase creates a new instance of notificationUsecase.
// sender may be nil when push is disabled.
func NewNotificationUsecase(sender Sender, tokenRepo tokenrepo.TokenRepository, logRepo repository.LogRepository) NotificationUsecase {
	return &notificationUsecase{
		sender:    sender,
		tokenRepo: tokenRepo,
		logRepo:   logRepo,
	}
}

// Send resolves the target tokens (explicit list, or the whole registry when
// absent), submits one multicast to the gateway and appends the audit row
// without blocking the response.
func (u *notificationUsecase) Send(ctx context.Context, input SendInput) (*SendResult, error) {
	targets := input.Tokens
	if len(targets) == 0 {
		all, err := u.tokenRepo.All()
		if err != nil {
			return nil, err
		}
		targets = all
	}

	if len(targets) == 0 {
		return &SendResult{NoTargets: true}, nil
	}

	if u.sender == nil {
		return nil, ErrSenderUnavailable
	}

	data := input.Data
	if data == nil {
		data = map[string]string{}
	}

	response, err := u.sender.Multicast(ctx, targets, input.Title, input.Body, data)
	if err != nil {
		return nil, err
	}

	go u.appendLog(input.Title, input.Body, data)

	result := &SendResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Responses:    make([]SendOutcome, 0, len(response.Responses)),
	}
	for _, resp := range response.Responses {
		outcome := SendOutcome{
			Success:   resp.Success,
			MessageID: resp.MessageID,
		}
		if resp.Error != nil {
			outcome.Error = resp.Error.Error()
		}
		result.Responses = append(result.Responses, outcome)
	}
	return result, nil
}

// appendLog is fire and forget: a failed audit row never downgrades a
// delivered notification.
func (u *notificationUsecase) appendLog(title, body string, data map[string]string) {
	payload, err := json.Marshal(data)
	if err != nil {
		payload = []byte("{}")
	}
	if err := u.logRepo.Append(title, body, string(payload)); err != nil {
		log.Printf("[Notifications] audit log write failed: %v", err)
	}
}
