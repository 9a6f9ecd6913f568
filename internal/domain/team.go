package domain

import "time"

// Team is a competition team. Read-only in the admin panel: the roster is
// managed by the registration flow, this core only lists.
type Team struct {
	ID        string
	Name      string
	Bio       string
	AvatarURL string
	Locked    bool
	MemberIDs []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
