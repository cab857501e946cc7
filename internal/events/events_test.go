package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failing struct{ calls int }

func (f *failing) Publish(context.Context, Event) error {
	f.calls++
	return errors.New("broker unreachable")
}
func (f *failing) Close() error { return nil }

func TestNewWithoutBrokerIsNop(t *testing.T) {
	p := New("", "topic")
	assert.IsType(t, Nop{}, p)
	assert.NoError(t, p.Publish(context.Background(), Event{Type: NewsCreated}))
	assert.NoError(t, p.Close())
}

func TestNewWithBroker(t *testing.T) {
	p := New("localhost:9092", "eplradar.events")
	assert.IsType(t, &KafkaPublisher{}, p)
	assert.NoError(t, p.Close())
}

func TestEmitRecords(t *testing.T) {
	r := &Recorder{}
	Emit(context.Background(), r, MatchUpdated, "7", map[string]int{"home_score": 2})

	got := r.Events()
	if assert.Len(t, got, 1) {
		assert.Equal(t, MatchUpdated, got[0].Type)
		assert.Equal(t, "7", got[0].Key)
	}
}

func TestEmitSwallowsErrors(t *testing.T) {
	f := &failing{}
	assert.NotPanics(t, func() {
		Emit(context.Background(), f, NewsCreated, "1", nil)
		Emit(context.Background(), nil, NewsCreated, "1", nil)
	})
	assert.Equal(t, 1, f.calls)
}
