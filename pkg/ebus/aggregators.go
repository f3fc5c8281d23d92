package ebus

type EventAggregatorFunc func(name string, value float64)

type EventAggregator struct {
	fun EventAggregatorFunc
}

func NewAggregator(f EventAggregatorFunc) *EventAggregator {
	return &EventAggregator{fun: f}
}

func (b *Bus) RegisterAggregator(aggs ...*EventAggregator) {
	b.aggregatorsLock.Lock()
	defer b.aggregatorsLock.Unlock()
outer:
	for _, agg := range aggs {
		for _, existing := range b.aggregators {
			if existing == agg {
				continue outer
			}
		}
		b.aggregators = append(b.aggregators, agg)
	}
}

// DiffAggregator publishes second-first on outputName once both topics
// have been updated.
func (b *Bus) DiffAggregator(first, second, outputName string) *EventAggregator {
	var firstUpdated, secondUpdated bool
	var firstValue, secondValue float64
	return NewAggregator(func(name string, value float64) {
		if name == first {
			firstValue = value
			firstUpdated = true
		}
		if name == second {
			secondValue = value
			secondUpdated = true
		}
		if firstUpdated && secondUpdated {
			b.Publish(outputName, secondValue-firstValue)
			firstUpdated, secondUpdated = false, false
		}
	})
}
