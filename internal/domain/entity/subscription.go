package entity

import "time"

// Subscription vincula una empresa con su plan. Una empresa tiene como máximo una suscripción.
// Solo las suscripciones con Active=true otorgan funcionalidades; las fechas son informativas.
type Subscription struct {
	ID        string
	CompanyID string
	Plan      string // ver plan.Tier
	StartDate time.Time
	EndDate   time.Time
	Active    bool
}
