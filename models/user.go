package models

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterData struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// AuthResponse is the data of login and register responses.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// MeResponse is the data of GET /auth/me.
type MeResponse struct {
	User *User `json:"user"`
}

type UpdateProfileData struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

type ChangePasswordData struct {
	CurrentPassword         string `json:"current_password"`
	NewPassword             string `json:"new_password"`
	NewPasswordConfirmation string `json:"new_password_confirmation"`
}

type UserSettings struct {
	Language           *string `json:"language,omitempty"`
	Timezone           *string `json:"timezone,omitempty"`
	DateFormat         *string `json:"date_format,omitempty"`
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	TaskAssignments    *bool   `json:"task_assignments,omitempty"`
	TaskDueDates       *bool   `json:"task_due_dates,omitempty"`
	CommentMentions    *bool   `json:"comment_mentions,omitempty"`
	WeeklyDigest       *bool   `json:"weekly_digest,omitempty"`
	Theme              *string `json:"theme,omitempty"`
	CompactMode        *bool   `json:"compact_mode,omitempty"`
	OnlineStatus       *bool   `json:"online_status,omitempty"`
}

type CreateUserData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserData struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}
