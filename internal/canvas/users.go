package canvas

import "context"

// User is the identity behind the stored token.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"primary_email"`
	Login string `json:"login_id"`
}

// Self verifies the stored credentials by fetching the current user.
func (c *Client) Self(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, "/api/v1/users/self", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
