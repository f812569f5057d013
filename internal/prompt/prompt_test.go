package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(fmt.Errorf("wrapped: %w", terminal.InterruptErr)); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected passthrough, got %v", err)
	}
}

func TestSurveyDriver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSurvey().Confirm(ctx, ConfirmConfig{Message: "Reset?"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDriverFunc(t *testing.T) {
	var got ConfirmConfig
	driver := DriverFunc(func(_ context.Context, cfg ConfirmConfig) (bool, error) {
		got = cfg
		return true, nil
	})
	ok, err := driver.Confirm(context.Background(), ConfirmConfig{Message: "Reset?", Default: true})
	if err != nil || !ok {
		t.Fatalf("unexpected result %v %v", ok, err)
	}
	if got.Message != "Reset?" || !got.Default {
		t.Fatalf("config not forwarded: %+v", got)
	}
}
