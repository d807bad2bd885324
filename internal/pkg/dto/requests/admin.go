package requests

type ActivateAdminMode struct {
	Pin string `json:"pin"`
}
