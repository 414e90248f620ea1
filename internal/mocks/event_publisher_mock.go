package mocks

import "sync"

// EventPublisher records every published payload
type EventPublisher struct {
	mu     sync.Mutex
	Events []map[string]interface{}
}

func (p *EventPublisher) Publish(payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := payload.(map[string]interface{}); ok {
		p.Events = append(p.Events, m)
	}
}

func (p *EventPublisher) Actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	actions := make([]string, 0, len(p.Events))
	for _, e := range p.Events {
		actions = append(actions, e["action"].(string))
	}
	return actions
}
