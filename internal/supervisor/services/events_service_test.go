// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

type fakeEventRouter struct {
	err       error
	exitEarly bool
}

func (f *fakeEventRouter) Run(ctx context.Context) error {
	if f.exitEarly {
		return f.err
	}
	<-ctx.Done()
	return nil
}

func TestEventBusService_Serve(t *testing.T) {
	var _ suture.Service = (*EventBusService)(nil)

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := NewEventBusService(&fakeEventRouter{}).Serve(ctx)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
		}
	})

	t.Run("router error is not restarted", func(t *testing.T) {
		routerErr := errors.New("router is already running")
		err := NewEventBusService(&fakeEventRouter{exitEarly: true, err: routerErr}).Serve(context.Background())
		if !errors.Is(err, suture.ErrDoNotRestart) {
			t.Errorf("Serve() = %v, want ErrDoNotRestart", err)
		}
	})

	t.Run("early clean exit is not restarted", func(t *testing.T) {
		err := NewEventBusService(&fakeEventRouter{exitEarly: true}).Serve(context.Background())
		if !errors.Is(err, suture.ErrDoNotRestart) {
			t.Errorf("Serve() = %v, want ErrDoNotRestart", err)
		}
	})
}

func TestEventBusService_String(t *testing.T) {
	if got := NewEventBusService(&fakeEventRouter{}).String(); got != "audit-event-bus" {
		t.Errorf("String() = %q", got)
	}
}
