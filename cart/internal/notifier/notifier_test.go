package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishRunsSubscribersInRegistrationOrder(t *testing.T) {
	n := New()

	var order []string
	n.Subscribe(func() { order = append(order, "badge") })
	n.Subscribe(func() { order = append(order, "page") })
	n.Subscribe(func() { order = append(order, "summary") })

	n.Publish()

	assert.Equal(t, []string{"badge", "page", "summary"}, order)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	n := New()
	n.Publish()
}

func TestEveryPublishReachesEverySubscriber(t *testing.T) {
	n := New()

	count := 0
	n.Subscribe(func() { count++ })

	n.Publish()
	n.Publish()
	n.Publish()

	assert.Equal(t, 3, count)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	n := New()

	first, second := 0, 0
	unsubscribe := n.Subscribe(func() { first++ })
	n.Subscribe(func() { second++ })

	n.Publish()
	unsubscribe()
	n.Publish()
	unsubscribe()
	n.Publish()

	assert.Equal(t, 1, first)
	assert.Equal(t, 3, second)
}

func TestSubscribeDuringPublishDoesNotDeadlock(t *testing.T) {
	n := New()

	late := 0
	n.Subscribe(func() {
		n.Subscribe(func() { late++ })
	})

	n.Publish()
	assert.Equal(t, 0, late)

	n.Publish()
	assert.Equal(t, 1, late)
}
