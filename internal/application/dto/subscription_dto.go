package dto

// SubscribeRequest entrada para crear o reemplazar la suscripción de una empresa.
// Sin fechas: hoy + PLAN_TRIAL_DAYS. Fechas en formato 2006-01-02.
type SubscribeRequest struct {
	Plan      string `json:"plan" validate:"required"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Active    *bool  `json:"active"`
}

// UpsertSubscriptionRequest igual que SubscribeRequest pero con la empresa en el cuerpo.
type UpsertSubscriptionRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Plan      string `json:"plan" validate:"required"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Active    *bool  `json:"active"`
}

// Subscribe parte común con SubscribeRequest.
func (r UpsertSubscriptionRequest) Subscribe() SubscribeRequest {
	return SubscribeRequest{Plan: r.Plan, StartDate: r.StartDate, EndDate: r.EndDate, Active: r.Active}
}

// SubscriptionResponse salida de una suscripción.
type SubscriptionResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Plan      string `json:"plan"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Active    bool   `json:"active"`
}

// SubscriptionListResponse lista paginada de suscripciones.
type SubscriptionListResponse struct {
	Items []SubscriptionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
