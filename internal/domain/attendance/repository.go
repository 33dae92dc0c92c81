package attendance

import "context"

// WorkProfileRepository reads branch and weekend settings of users.
type WorkProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (WorkProfile, error)
}
