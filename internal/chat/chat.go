// Package chat models the assistant conversation attached to an edited
// entity. Message lists are append-only per (entityType, entityId) pair.
// A user message is appended optimistically before any network response;
// if the request fails, the tentative message is rolled back by its
// client-generated correlation id.
package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Metadata carries assistant response annotations.
type Metadata struct {
	UsedTools []string `json:"used_tools,omitempty"`
}

// Message is one entry in a conversation.
type Message struct {
	ID            string    `json:"id"`
	CorrelationID string    `json:"correlationId"`
	EntityType    string    `json:"entityType"`
	EntityID      string    `json:"entityId"`
	Role          Role      `json:"role"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	Pending       bool      `json:"pending"`
	Metadata      *Metadata `json:"metadata,omitempty"`
}

// RenderedType classifies how the message is presented. An assistant
// response that used tools renders as a tool message.
func (m Message) RenderedType() string {
	if m.Metadata != nil && len(m.Metadata.UsedTools) > 0 {
		return "tool"
	}
	return string(m.Role)
}

type threadKey struct {
	entityType string
	entityID   string
}

// Store keeps per-entity conversations in memory.
type Store struct {
	mu      sync.RWMutex
	threads map[threadKey][]Message
}

// NewStore creates an empty chat store.
func NewStore() *Store {
	return &Store{threads: make(map[threadKey][]Message)}
}

// AppendOptimistic appends a pending user message and returns it. The
// correlation id is the rollback key if the backing request fails.
func (s *Store) AppendOptimistic(entityType, entityID, content string) Message {
	msg := Message{
		ID:            uuid.NewString(),
		CorrelationID: uuid.NewString(),
		EntityType:    entityType,
		EntityID:      entityID,
		Role:          RoleUser,
		Content:       content,
		CreatedAt:     time.Now(),
		Pending:       true,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	k := threadKey{entityType, entityID}
	s.threads[k] = append(s.threads[k], msg)
	return msg
}

// Confirm marks the pending message with the given correlation id as
// committed.
func (s *Store) Confirm(entityType, entityID, correlationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := threadKey{entityType, entityID}
	for i, msg := range s.threads[k] {
		if msg.CorrelationID == correlationID && msg.Pending {
			s.threads[k][i].Pending = false
			return true
		}
	}
	return false
}

// Rollback removes the pending message with the given correlation id,
// restoring the last-known-good conversation after a failed request.
func (s *Store) Rollback(entityType, entityID, correlationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := threadKey{entityType, entityID}
	msgs := s.threads[k]
	for i, msg := range msgs {
		if msg.CorrelationID == correlationID && msg.Pending {
			s.threads[k] = append(msgs[:i:i], msgs[i+1:]...)
			return true
		}
	}
	return false
}

// AppendAssistant appends a committed assistant response.
func (s *Store) AppendAssistant(entityType, entityID, content string, metadata *Metadata) Message {
	msg := Message{
		ID:         uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		Role:       RoleAssistant,
		Content:    content,
		CreatedAt:  time.Now(),
		Metadata:   metadata,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	k := threadKey{entityType, entityID}
	s.threads[k] = append(s.threads[k], msg)
	return msg
}

// Messages returns a copy of the conversation in append order.
func (s *Store) Messages(entityType, entityID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Message(nil), s.threads[threadKey{entityType, entityID}]...)
}
