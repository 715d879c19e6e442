package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type Group struct {
	CreatedAt time.Time
	GroupID   uuid.UUID
	Name      string
	Members   []ParticipantID
}

func (g Group) HasMember(p ParticipantID) bool {
	return slices.Contains(g.Members, p)
}
