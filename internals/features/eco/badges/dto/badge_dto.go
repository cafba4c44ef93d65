package dto

// UnlockBadgeRequest: unlocked wajib true, badge yang terkunci tidak
// pernah dikirim ke server.
type UnlockBadgeRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Unlocked    bool   `json:"unlocked" validate:"required,eq=true"`
}
