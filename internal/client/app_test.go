package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/tui"
	"github.com/stretchr/testify/assert"
)

type fakeUI struct {
	err error
	// events is shared with fakeWorkers to check ordering
	events *[]string
}

func (f *fakeUI) Run(context.Context) error {
	*f.events = append(*f.events, "ui")
	return f.err
}

type fakeWorkers struct {
	events *[]string
}

func (f *fakeWorkers) Start(context.Context) { *f.events = append(*f.events, "start") }
func (f *fakeWorkers) Stop()                 { *f.events = append(*f.events, "stop") }

func TestApp_Run(t *testing.T) {
	uiFailure := errors.New("terminal gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "normal exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: uiFailure, wantErr: uiFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []string
			app := NewApp(&fakeUI{err: tt.uiErr, events: &events}, &fakeWorkers{events: &events}, logger.Nop())

			err := app.run(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, []string{"start", "ui", "stop"}, events)
		})
	}
}

func TestApp_RunInterrupted(t *testing.T) {
	var events []string
	app := NewApp(&fakeUI{err: errors.New("program was killed"), events: &events}, &fakeWorkers{events: &events}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, app.run(ctx))
}
