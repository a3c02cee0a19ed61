package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"

	tokendomain "notifyhub-backend/internal/token/domain"
)

// fakeSender records multicast calls and returns a canned batch response.
type fakeSender struct {
	calls    int
	tokens   []string
	response *messaging.BatchResponse
	err      error
}

func (f *fakeSender) Multicast(_ context.Context, tokens []string, _, _ string, _ map[string]string) (*messaging.BatchResponse, error) {
	f.calls++
	f.tokens = tokens
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type fakeTokenRepo struct {
	tokens []string
	err    error
}

func (f *fakeTokenRepo) Register(token string) (*tokendomain.DeviceToken, error) {
	return &tokendomain.DeviceToken{Token: token}, nil
}

func (f *fakeTokenRepo) All() ([]string, error) {
	return f.tokens, f.err
}

type fakeLogRepo struct {
	appended chan struct{}
	err      error
}

func (f *fakeLogRepo) Append(_, _, _ string) error {
	if f.appended != nil {
		close(f.appended)
	}
	return f.err
}

func TestSendNoTargetsSkipsGateway(t *testing.T) {
	sender := &fakeSender{}
	uc := NewNotificationUsecase(sender, &fakeTokenRepo{}, &fakeLogRepo{})

	result, err := uc.Send(context.Background(), SendInput{Title: "t", Body: "b"})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if !result.NoTargets {
		t.Error("expected NoTargets outcome")
	}
	if sender.calls != 0 {
		t.Errorf("expected zero gateway calls, got %d", sender.calls)
	}
}

func TestSendResolvesRegistryWhenTokensAbsent(t *testing.T) {
	sender := &fakeSender{
		response: &messaging.BatchResponse{
			SuccessCount: 2,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "m1"},
				{Success: true, MessageID: "m2"},
			},
		},
	}
	uc := NewNotificationUsecase(sender, &fakeTokenRepo{tokens: []string{"t1", "t2"}}, &fakeLogRepo{})

	result, err := uc.Send(context.Background(), SendInput{Title: "t", Body: "b"})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if sender.calls != 1 {
		t.Fatalf("expected one gateway call, got %d", sender.calls)
	}
	if len(sender.tokens) != 2 {
		t.Errorf("expected registry tokens to be resolved, got %v", sender.tokens)
	}
	if result.SuccessCount != 2 || result.FailureCount != 0 {
		t.Errorf("unexpected counts: %+v", result)
	}
	if len(result.Responses) != 2 || result.Responses[0].MessageID != "m1" {
		t.Errorf("per-token detail not preserved: %+v", result.Responses)
	}
}

func TestSendExplicitTokensBypassRegistry(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{SuccessCount: 1, Responses: []*messaging.SendResponse{{Success: true}}}}
	repo := &fakeTokenRepo{err: errors.New("registry must not be read")}
	uc := NewNotificationUsecase(sender, repo, &fakeLogRepo{})

	_, err := uc.Send(context.Background(), SendInput{Title: "t", Body: "b", Tokens: []string{"explicit"}})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if len(sender.tokens) != 1 || sender.tokens[0] != "explicit" {
		t.Errorf("expected explicit token set, got %v", sender.tokens)
	}
}

func TestSendFailedTokenDetail(t *testing.T) {
	sender := &fakeSender{
		response: &messaging.BatchResponse{
			SuccessCount: 0,
			FailureCount: 1,
			Responses:    []*messaging.SendResponse{{Success: false, Error: errors.New("unregistered")}},
		},
	}
	uc := NewNotificationUsecase(sender, &fakeTokenRepo{tokens: []string{"dead"}}, &fakeLogRepo{})

	result, err := uc.Send(context.Background(), SendInput{Title: "t", Body: "b"})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if result.FailureCount != 1 {
		t.Errorf("expected one failure, got %d", result.FailureCount)
	}
	if result.Responses[0].Error != "unregistered" {
		t.Errorf("expected gateway error detail, got %q", result.Responses[0].Error)
	}
}

func TestSendAuditLogFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{SuccessCount: 1, Responses: []*messaging.SendResponse{{Success: true}}}}
	logRepo := &fakeLogRepo{appended: make(chan struct{}), err: errors.New("log table gone")}
	uc := NewNotificationUsecase(sender, &fakeTokenRepo{tokens: []string{"t1"}}, logRepo)

	result, err := uc.Send(context.Background(), SendInput{Title: "t", Body: "b"})
	if err != nil {
		t.Fatalf("a failed audit write must not fail the send: %v", err)
	}
	if result.SuccessCount != 1 {
		t.Errorf("expected preserved success count, got %d", result.SuccessCount)
	}

	select {
	case <-logRepo.appended:
	case <-time.After(2 * time.Second):
		t.Error("expected the audit append to be attempted")
	}
}

func TestSendWithoutConfiguredGateway(t *testing.T) {
	uc := NewNotificationUsecase(nil, &fakeTokenRepo{tokens: []string{"t1"}}, &fakeLogRepo{})

	_, err := uc.Send(context.Background(), SendInput{Title: "t", Body: "b"})
	if !errors.Is(err, ErrSenderUnavailable) {
		t.Fatalf("expected ErrSenderUnavailable, got %v", err)
	}
}
