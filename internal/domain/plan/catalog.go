// Package plan contiene el catálogo de planes de suscripción: orden de tiers,
// funcionalidades que exige cada uno y límite de sucursales.
package plan

import (
	"errors"
	"fmt"
	"strings"
)

// Tier nombre de un plan.
type Tier string

// Tiers del catálogo estándar, de menor a mayor.
const (
	Basico   Tier = "Basico"
	Estandar Tier = "Estandar"
	Premium  Tier = "Premium"
)

// Feature funcionalidad habilitada por plan.
type Feature string

// Funcionalidades conocidas.
const (
	BasicFeatures     Feature = "basic_features"
	StandardReports   Feature = "standard_reports"
	AdvancedReports   Feature = "advanced_reports"
	UnlimitedBranches Feature = "unlimited_branches"
)

// ErrUnknownTier se devuelve al interpretar un nombre de plan que no está en el catálogo.
var ErrUnknownTier = errors.New("plan desconocido")

// Limit cantidad máxima de un recurso. Unlimited tiene prioridad sobre Max.
type Limit struct {
	Max       int
	Unlimited bool
}

// Of construye un límite finito.
func Of(n int) Limit { return Limit{Max: n} }

// NoLimit límite infinito.
func NoLimit() Limit { return Limit{Unlimited: true} }

// Allows informa si con count recursos existentes se puede crear uno más.
func (l Limit) Allows(count int) bool {
	return l.Unlimited || count < l.Max
}

func (l Limit) String() string {
	if l.Unlimited {
		return "ilimitado"
	}
	return fmt.Sprint(l.Max)
}

// Item descripción de un plan para mostrar al cliente.
type Item struct {
	Tier        Tier
	Label       string
	Benefits    []string
	BranchLimit Limit
}

// Options datos para construir un Catalog.
type Options struct {
	Order        []Tier           // de menor a mayor
	Requirements map[Feature]Tier // plan mínimo por funcionalidad
	BranchLimits map[Tier]Limit   // tiers sin entrada quedan ilimitados
	NoPlanLimit  Limit            // límite para empresas sin plan activo
	Labels       map[Tier]string
	Benefits     map[Tier][]string
}

// Catalog es inmutable: se construye una vez al arrancar y se comparte entre goroutines.
type Catalog struct {
	order        []Tier
	rank         map[Tier]int
	requirements map[Feature]Tier
	limits       map[Tier]Limit
	noPlan       Limit
	labels       map[Tier]string
	benefits     map[Tier][]string
}

// NewCatalog valida las opciones y copia todos los datos.
// Falla si un límite o un requisito nombra un tier que no está en Order.
func NewCatalog(opts Options) (*Catalog, error) {
	if len(opts.Order) == 0 {
		return nil, errors.New("plan: el orden de tiers está vacío")
	}
	c := &Catalog{
		order:        append([]Tier(nil), opts.Order...),
		rank:         make(map[Tier]int, len(opts.Order)),
		requirements: make(map[Feature]Tier, len(opts.Requirements)),
		limits:       make(map[Tier]Limit, len(opts.BranchLimits)),
		noPlan:       opts.NoPlanLimit,
		labels:       make(map[Tier]string, len(opts.Labels)),
		benefits:     make(map[Tier][]string, len(opts.Benefits)),
	}
	for i, t := range opts.Order {
		if _, dup := c.rank[t]; dup {
			return nil, fmt.Errorf("plan: tier %q repetido", t)
		}
		c.rank[t] = i
	}
	for f, t := range opts.Requirements {
		if !c.Known(t) {
			return nil, fmt.Errorf("plan: la funcionalidad %q exige el tier desconocido %q", f, t)
		}
		c.requirements[f] = t
	}
	for t, l := range opts.BranchLimits {
		if !c.Known(t) {
			return nil, fmt.Errorf("plan: límite definido para tier desconocido %q", t)
		}
		c.limits[t] = l
	}
	for t, s := range opts.Labels {
		c.labels[t] = s
	}
	for t, b := range opts.Benefits {
		c.benefits[t] = append([]string(nil), b...)
	}
	return c, nil
}

// Default catálogo de producción: Basico 1 sucursal, Estandar 3, Premium ilimitado.
func Default(noPlanLimit Limit) *Catalog {
	c, err := NewCatalog(Options{
		Order: []Tier{Basico, Estandar, Premium},
		Requirements: map[Feature]Tier{
			BasicFeatures:     Basico,
			StandardReports:   Estandar,
			AdvancedReports:   Premium,
			UnlimitedBranches: Premium,
		},
		BranchLimits: map[Tier]Limit{
			Basico:   Of(1),
			Estandar: Of(3),
			Premium:  NoLimit(),
		},
		NoPlanLimit: noPlanLimit,
		Labels: map[Tier]string{
			Basico:   "Básico",
			Estandar: "Estándar",
			Premium:  "Premium",
		},
		Benefits: map[Tier][]string{
			Basico:   {"Acceso a funciones esenciales", "Máximo 1 sucursal", "Reportes avanzados ocultos"},
			Estandar: {"Hasta 3 sucursales", "Reportes estándar incluidos", "Opción de crecer a Premium"},
			Premium:  {"Sucursales ilimitadas", "Reportes avanzados", "Todas las funcionalidades disponibles"},
		},
	})
	if err != nil {
		panic(err) // datos constantes
	}
	return c
}

// Order tiers de menor a mayor (copia).
func (c *Catalog) Order() []Tier {
	return append([]Tier(nil), c.order...)
}

// Known informa si el tier está en el catálogo.
func (c *Catalog) Known(t Tier) bool {
	_, ok := c.rank[t]
	return ok
}

// Rank posición del tier en el orden (0 = más bajo).
func (c *Catalog) Rank(t Tier) (int, bool) {
	r, ok := c.rank[t]
	return r, ok
}

// TierSatisfies informa si tier es igual o superior a required. Tiers desconocidos o vacíos nunca satisfacen.
func (c *Catalog) TierSatisfies(tier, required Tier) bool {
	have, ok := c.rank[tier]
	if !ok {
		return false
	}
	need, ok := c.rank[required]
	if !ok {
		return false
	}
	return have >= need
}

// Requirement plan mínimo que exige la funcionalidad.
func (c *Catalog) Requirement(f Feature) (Tier, bool) {
	t, ok := c.requirements[f]
	return t, ok
}

// HasFeature informa si un plan ya resuelto habilita la funcionalidad.
// Funcionalidad desconocida o tier vacío → false.
func (c *Catalog) HasFeature(tier Tier, f Feature) bool {
	req, ok := c.requirements[f]
	if !ok {
		return false
	}
	return c.TierSatisfies(tier, req)
}

// BranchLimit límite de sucursales del tier. Tier desconocido o vacío → NoPlanLimit.
func (c *Catalog) BranchLimit(t Tier) Limit {
	if !c.Known(t) {
		return c.noPlan
	}
	if l, ok := c.limits[t]; ok {
		return l
	}
	return NoLimit()
}

// NoPlanLimit límite aplicado a empresas sin suscripción activa.
func (c *Catalog) NoPlanLimit() Limit { return c.noPlan }

// Label nombre para mostrar; el propio tier si no tiene etiqueta.
func (c *Catalog) Label(t Tier) string {
	if s, ok := c.labels[t]; ok {
		return s
	}
	return string(t)
}

// Items planes en orden con etiqueta, beneficios y límite.
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, Item{
			Tier:        t,
			Label:       c.Label(t),
			Benefits:    append([]string(nil), c.benefits[t]...),
			BranchLimit: c.BranchLimit(t),
		})
	}
	return out
}

// ParseTier interpreta un nombre de plan. Acepta mayúsculas/minúsculas y las etiquetas con tilde.
func (c *Catalog) ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(s)
	for _, t := range c.order {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, c.Label(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}
