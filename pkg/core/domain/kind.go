package domain

// Kind 量的种类 (命名量)
type Kind string

// 基本量
const (
	KindLength             Kind = "Length"
	KindTime               Kind = "Time"
	KindTemperature        Kind = "Temperature"
	KindMass               Kind = "Mass"
	KindCurrent            Kind = "Current"
	KindLuminousIntensity  Kind = "LuminousIntensity"
	KindSubstanceQuantity  Kind = "SubstanceQuantity"
	KindAngle              Kind = "Angle"
	KindSolidAngle         Kind = "SolidAngle"
	KindDigitalInformation Kind = "DigitalInformation"
)

// 导出量
const (
	KindDimensionless       Kind = "Dimensionless"
	KindArea                Kind = "Area"
	KindVolume              Kind = "Volume"
	KindSpeed               Kind = "Speed"
	KindAcceleration        Kind = "Acceleration"
	KindJerk                Kind = "Jerk"
	KindFrequency           Kind = "Frequency"
	KindAngularVelocity     Kind = "AngularVelocity"
	KindAngularAcceleration Kind = "AngularAcceleration"
	KindDataRate            Kind = "DataRate"
	KindForce               Kind = "Force"
	KindEnergy              Kind = "Energy"
	KindPower               Kind = "Power"
	KindPressure            Kind = "Pressure"
	KindMomentum            Kind = "Momentum"
	KindDensity             Kind = "Density"
	KindCharge              Kind = "Charge"
	KindLuminousFlux        Kind = "LuminousFlux"
	KindIlluminance         Kind = "Illuminance"
	KindConcentration       Kind = "Concentration"
	KindMolarMass           Kind = "MolarMass"
	KindCatalyticActivity   Kind = "CatalyticActivity"

	// KindDerived 通用回退: 没有命名量匹配时使用，保留完整量纲向量
	KindDerived Kind = "Derived"
)

var baseKinds = [NumDimensions]Kind{
	Length:             KindLength,
	Time:               KindTime,
	Temperature:        KindTemperature,
	Mass:               KindMass,
	Current:            KindCurrent,
	LuminousIntensity:  KindLuminousIntensity,
	SubstanceQuantity:  KindSubstanceQuantity,
	Angle:              KindAngle,
	SolidAngle:         KindSolidAngle,
	DigitalInformation: KindDigitalInformation,
}

// BaseKind returns the named kind of a single base dimension.
func BaseKind(d Dimension) Kind {
	return baseKinds[d]
}

// KindDefinition 命名量注册项: 指数模式 -> 种类
type KindDefinition struct {
	Kind    Kind
	Pattern Pattern
}

// BaseKindDefinitions 十个基本量纲各自的一次幂模式
func BaseKindDefinitions() []KindDefinition {
	defs := make([]KindDefinition, 0, NumDimensions)
	for _, d := range Dimensions() {
		var p Pattern
		p[d] = 1
		defs = append(defs, KindDefinition{Kind: BaseKind(d), Pattern: p})
	}
	return defs
}
