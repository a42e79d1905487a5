// Package plans is the fixed catalogue of subscription plans offered to
// hospitals. The list is compiled in and never persisted.
package plans

// Interval is the billing period of a plan.
type Interval string

const (
	Monthly  Interval = "monthly"
	Annually Interval = "annually"
)

// Plan is one subscription tier. Price is in the currency's minor unit.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Currency string   `json:"currency"`
	Interval Interval `json:"interval"`
	Features []string `json:"features"`
	Active   bool     `json:"active"`
}

var catalogue = []Plan{
	{
		ID:       "starter",
		Name:     "Starter",
		Price:    2500000,
		Currency: "NGN",
		Interval: Monthly,
		Features: []string{"Up to 10 staff accounts", "Patient records", "Admissions and discharge"},
		Active:   true,
	},
	{
		ID:       "standard",
		Name:     "Standard",
		Price:    7500000,
		Currency: "NGN",
		Interval: Monthly,
		Features: []string{"Up to 50 staff accounts", "Staff chat with attachments", "Corporate and HMO billing", "Laboratory module"},
		Active:   true,
	},
	{
		ID:       "premium",
		Name:     "Premium",
		Price:    15000000,
		Currency: "NGN",
		Interval: Monthly,
		Features: []string{"Unlimited staff accounts", "Patient surveys", "Custom branding", "Priority support"},
		Active:   true,
	},
	{
		ID:       "enterprise-annual",
		Name:     "Enterprise (annual)",
		Price:    150000000,
		Currency: "NGN",
		Interval: Annually,
		Features: []string{"Everything in Premium", "Multiple branches", "Dedicated account manager"},
		Active:   false,
	},
}

// All returns every plan in display order. Callers own the returned slice.
func All() []Plan {
	out := make([]Plan, len(catalogue))
	for i, p := range catalogue {
		out[i] = clone(p)
	}
	return out
}

// Active returns the plans currently open for sale, in display order.
func Active() []Plan {
	out := make([]Plan, 0, len(catalogue))
	for _, p := range catalogue {
		if p.Active {
			out = append(out, clone(p))
		}
	}
	return out
}

// Find looks a plan up by ID.
func Find(id string) (Plan, bool) {
	for _, p := range catalogue {
		if p.ID == id {
			return clone(p), true
		}
	}
	return Plan{}, false
}

func clone(p Plan) Plan {
	p.Features = append([]string(nil), p.Features...)
	return p
}
