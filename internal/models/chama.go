package models

import "time"

// Chama represents a savings group.
// Members contribute funds to the chama pool and may request loans against it.
type Chama struct {
	// ID is the unique identifier for the chama (UUID format).
	ID string

	// Name is the display name of the chama (e.g., "Uhuru Savings").
	Name string

	// CreatedAt is the day the chama was created.
	CreatedAt time.Time
}

// Member is a person belonging to exactly one chama.
type Member struct {
	ID      string
	Name    string
	Email   string
	ChamaID string

	// JoinedAt is the day the member joined the chama.
	JoinedAt time.Time

	// AvatarSeed picks a deterministic avatar image for the member.
	AvatarSeed int
}

// Contribution is a recorded deposit by a member into the chama pool.
type Contribution struct {
	// ID is the unique identifier for the contribution (UUID format).
	ID string

	// MemberID is the contributing member.
	MemberID string

	// ChamaID duplicates the member's chama so contributions can be scoped
	// without a join.
	ChamaID string

	// Amount is the contributed amount. Always positive.
	Amount float64

	// Date is when the contribution was made.
	Date time.Time
}
