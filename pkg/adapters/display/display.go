// Package display 量的文本呈现
package display

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/renjie/prism-units/pkg/core/domain"
)

// Symbolizer 提供量的展示符号 (ports.Calculator 满足该接口)
type Symbolizer interface {
	Symbol(q domain.Quantity) (string, error)
}

// Format 渲染为 "{数值}{符号}"，例如 "25km²"、"2.5km/s"
func Format(s Symbolizer, q domain.Quantity) (string, error) {
	sym, err := s.Symbol(q)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", q.Kind(), err)
	}
	return strconv.FormatFloat(q.Magnitude(), 'f', -1, 64) + sym, nil
}

// FormatExp 科学计数法渲染，例如 "1.5e+03m"
func FormatExp(s Symbolizer, q domain.Quantity) (string, error) {
	sym, err := s.Symbol(q)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", q.Kind(), err)
	}
	return strconv.FormatFloat(q.Magnitude(), 'e', -1, 64) + sym, nil
}

// FormatLocalized renders the magnitude with the digit grouping and decimal
// separator of tag, followed by a space and the symbol.
func FormatLocalized(s Symbolizer, q domain.Quantity, tag language.Tag) (string, error) {
	sym, err := s.Symbol(q)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", q.Kind(), err)
	}
	p := message.NewPrinter(tag)
	if sym == "" {
		return p.Sprintf("%v", q.Magnitude()), nil
	}
	return p.Sprintf("%v %s", q.Magnitude(), sym), nil
}
