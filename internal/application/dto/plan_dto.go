package dto

// PlanResponse descripción pública de un plan.
type PlanResponse struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Benefits    []string `json:"benefits"`
	BranchLimit *int     `json:"branch_limit"` // null = ilimitado
}

// SelectPlanRequest el cliente final elige un plan.
type SelectPlanRequest struct {
	Plan string `json:"plan" validate:"required"`
}

// MyPlanResponse plan vigente de la empresa del usuario.
type MyPlanResponse struct {
	Plan         string                `json:"plan"`
	Label        string                `json:"label"`
	Company      *CompanyResponse      `json:"company,omitempty"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
	Expired      bool                  `json:"expired"` // informativo: el acceso depende de active
}
