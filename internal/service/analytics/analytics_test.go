package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rd1855/portfolio_backend/internal/ledger"
	"github.com/rd1855/portfolio_backend/internal/validation"
	"github.com/rd1855/portfolio_backend/pkg/events"
)

type failingLedger struct{ ledger.Ledger }

func (failingLedger) RecordPageView(context.Context, string) (*ledger.PageView, error) {
	return nil, errors.New("timeout")
}

func TestRecordPageView_Sequence(t *testing.T) {
	bus := events.NewLocal()
	defer bus.Close()

	got := make(chan ledger.PageView, 3)
	require.NoError(t, bus.Subscribe("portfolio.analytics.pageview", func(_ context.Context, evt events.Event) {
		var pv ledger.PageView
		if err := evt.Decode(&pv); err == nil {
			got <- pv
		}
	}))

	svc := New(ledger.NewMemory(ledger.NewSequence(time.Now)), bus, "portfolio")

	for i := int64(1); i <= 3; i++ {
		pv, err := svc.RecordPageView(context.Background(), "home")
		require.NoError(t, err)
		assert.Equal(t, i, pv.Views)
		assert.Equal(t, i, pv.TotalVisitors)
	}

	for range 3 {
		select {
		case pv := <-got:
			assert.Equal(t, "home", pv.Page)
		case <-time.After(time.Second):
			t.Fatal("page view event not delivered")
		}
	}
}

func TestRecordPageView_EmptyPage(t *testing.T) {
	svc := New(ledger.NewMemory(ledger.NewSequence(time.Now)), nil, "")

	_, err := svc.RecordPageView(context.Background(), "")
	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"page"}, ve.Fields)
	assert.Equal(t, "Page name required", ve.Error())
}

func TestRecordPageView_LedgerFailure(t *testing.T) {
	svc := New(failingLedger{}, nil, "")
	_, err := svc.RecordPageView(context.Background(), "home")
	assert.ErrorIs(t, err, ErrInternal)
}
