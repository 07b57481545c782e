package catalog

import "github.com/renjie/prism-units/pkg/core/domain"

type exps = map[domain.Dimension]int

// Kinds returns the built-in named kinds: one per base dimension, the
// dimensionless kind and the derived kinds, in resolution order.
func Kinds() []domain.KindDefinition {
	defs := domain.BaseKindDefinitions()
	return append(defs,
		domain.KindDefinition{Kind: domain.KindDimensionless},
		derived(domain.KindArea, exps{domain.Length: 2}),
		derived(domain.KindVolume, exps{domain.Length: 3}),
		derived(domain.KindSpeed, exps{domain.Length: 1, domain.Time: -1}),
		derived(domain.KindAcceleration, exps{domain.Length: 1, domain.Time: -2}),
		derived(domain.KindJerk, exps{domain.Length: 1, domain.Time: -3}),
		derived(domain.KindFrequency, exps{domain.Time: -1}),
		derived(domain.KindAngularVelocity, exps{domain.Angle: 1, domain.Time: -1}),
		derived(domain.KindAngularAcceleration, exps{domain.Angle: 1, domain.Time: -2}),
		derived(domain.KindDataRate, exps{domain.DigitalInformation: 1, domain.Time: -1}),
		derived(domain.KindForce, exps{domain.Mass: 1, domain.Length: 1, domain.Time: -2}),
		derived(domain.KindEnergy, exps{domain.Mass: 1, domain.Length: 2, domain.Time: -2}),
		derived(domain.KindPower, exps{domain.Mass: 1, domain.Length: 2, domain.Time: -3}),
		derived(domain.KindPressure, exps{domain.Mass: 1, domain.Length: -1, domain.Time: -2}),
		derived(domain.KindMomentum, exps{domain.Mass: 1, domain.Length: 1, domain.Time: -1}),
		derived(domain.KindDensity, exps{domain.Mass: 1, domain.Length: -3}),
		derived(domain.KindCharge, exps{domain.Current: 1, domain.Time: 1}),
		derived(domain.KindLuminousFlux, exps{domain.LuminousIntensity: 1, domain.SolidAngle: 1}),
		derived(domain.KindIlluminance, exps{domain.LuminousIntensity: 1, domain.SolidAngle: 1, domain.Length: -2}),
		derived(domain.KindConcentration, exps{domain.SubstanceQuantity: 1, domain.Length: -3}),
		derived(domain.KindMolarMass, exps{domain.Mass: 1, domain.SubstanceQuantity: -1}),
		derived(domain.KindCatalyticActivity, exps{domain.SubstanceQuantity: 1, domain.Time: -1}),
	)
}

func derived(kind domain.Kind, e exps) domain.KindDefinition {
	return domain.KindDefinition{Kind: kind, Pattern: domain.NewPattern(e)}
}
