package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
)

func TestPublishDeliversToSubscribersInOrder(t *testing.T) {
	b := New()

	var got []string
	b.Subscribe(EventOptionAdded, func(e DomainEvent) {
		got = append(got, "first:"+e.(OptionAddedEvent).Option.Label)
	})
	b.Subscribe(EventOptionAdded, func(e DomainEvent) {
		got = append(got, "second:"+e.(OptionAddedEvent).Option.Label)
	})
	b.Subscribe(EventSelectionChanged, func(e DomainEvent) {
		got = append(got, "wrong type")
	})

	b.Publish(OptionAddedEvent{Option: domain.Option{ID: "1", Label: "Fruit"}})

	assert.Equal(t, []string{"first:Fruit", "second:Fruit"}, got)
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New()

	var calls []int
	unsubA := b.Subscribe(EventStateLoaded, func(DomainEvent) { calls = append(calls, 1) })
	b.Subscribe(EventStateLoaded, func(DomainEvent) { calls = append(calls, 2) })

	unsubA()
	unsubA() // second call is a no-op
	b.Publish(StateLoadedEvent{})

	assert.Equal(t, []int{2}, calls)
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	b := New()

	delivered := false
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { delivered = true })

	require.NotPanics(t, func() { b.Publish(ErrorEvent{Message: "x"}) })
	assert.True(t, delivered)
}

func TestNullBus(t *testing.T) {
	var b EventBus = NullBus{}
	unsub := b.Subscribe(EventError, func(DomainEvent) { t.Fatal("should not be called") })
	b.Publish(ErrorEvent{})
	unsub()
}
