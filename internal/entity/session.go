package entity

// User is the profile returned by the Lumera API on login/signup.
type User struct {
	Id        int    `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// Session is the client's belief about who is logged in. A zero Session means
// "not logged in". Invariant: User is only set when Token is set.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
