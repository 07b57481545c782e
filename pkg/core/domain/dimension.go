package domain

import (
	"fmt"
	"strings"
)

// Dimension 基本量纲
// 前七个对应 SI 基本量，后三个不是 SI 基本量，但作为基本量纲处理更方便
type Dimension int

const (
	Length Dimension = iota
	Time
	Temperature
	Mass
	Current
	LuminousIntensity
	SubstanceQuantity
	Angle
	SolidAngle
	DigitalInformation
)

// NumDimensions 量纲向量的固定长度
const NumDimensions = 10

var dimensionNames = [NumDimensions]string{
	Length:             "length",
	Time:               "time",
	Temperature:        "temperature",
	Mass:               "mass",
	Current:            "current",
	LuminousIntensity:  "luminous_intensity",
	SubstanceQuantity:  "substance_quantity",
	Angle:              "angle",
	SolidAngle:         "solid_angle",
	DigitalInformation: "digital_information",
}

// Dimensions returns all base dimensions in vector order.
func Dimensions() []Dimension {
	dims := make([]Dimension, NumDimensions)
	for i := range dims {
		dims[i] = Dimension(i)
	}
	return dims
}

// Valid reports whether d is one of the ten base dimensions.
func (d Dimension) Valid() bool {
	return d >= Length && d <= DigitalInformation
}

func (d Dimension) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return dimensionNames[d]
}

// ParseDimension 解析目录文件中的量纲名称 (大小写、空格、连字符不敏感)
func ParseDimension(name string) (Dimension, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for i, n := range dimensionNames {
		if n == key {
			return Dimension(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
}
