package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/pressure"
	"github.com/lone-faerie/pressure/config"
)

// valuer is implemented by [pressure.Measurement] and [pressure.Difference].
type valuer interface {
	In(u pressure.Unit) float64
}

// printer writes values in the format of its [config.OutputConfig].
type printer struct {
	w   io.Writer
	out *config.OutputConfig
	msg *message.Printer
}

func newPrinter(w io.Writer, out *config.OutputConfig) *printer {
	p := &printer{w: w, out: out}
	if tag := out.Tag(); tag != language.Und {
		p.msg = message.NewPrinter(tag)
	}
	return p
}

func (p *printer) print(v valuer) error {
	units := p.out.SelectedUnits()
	for _, u := range units {
		if f := v.In(u); math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%s: value is not finite", u.Symbol())
		}
	}

	switch p.out.Format {
	case config.FormatJSON:
		return p.printJSON(v, units)
	case config.FormatYAML:
		return p.printYAML(v, units)
	}
	return p.printText(v, units)
}

func (p *printer) printText(v valuer, units []pressure.Unit) error {
	var b strings.Builder
	for _, u := range units {
		b.WriteString(p.formatText(v.In(u)))
		b.WriteByte(' ')
		b.WriteString(p.out.Symbol(u))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *printer) printJSON(v valuer, units []pressure.Unit) error {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, u := range units {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(p.out.Key.Key(u))
		if err != nil {
			return err
		}
		val, err := json.Marshal(p.round(v.In(u)))
		if err != nil {
			return err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, b.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := p.w.Write(out.Bytes())
	return err
}

func (p *printer) printYAML(v valuer, units []pressure.Unit) error {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, 2*len(units)),
	}
	for _, u := range units {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.out.Key.Key(u)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.formatPlain(v.In(u))},
		)
	}
	return encodeYAML(p.w, node)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// formatPlain formats f with the configured precision, without a locale.
func (p *printer) formatPlain(f float64) string {
	return strconv.FormatFloat(f, 'f', p.out.Precision, 64)
}

// formatText formats f with the configured precision and locale.
func (p *printer) formatText(f float64) string {
	if p.msg == nil {
		return p.formatPlain(f)
	}
	digits := p.out.Precision
	opts := []number.Option{number.MaxFractionDigits(digits)}
	if digits < 0 {
		opts[0] = number.MaxFractionDigits(fractionDigits(f))
	} else {
		opts = append(opts, number.MinFractionDigits(digits))
	}
	return p.msg.Sprint(number.Decimal(f, opts...))
}

// round returns f rounded to the configured precision.
func (p *printer) round(f float64) float64 {
	if p.out.Precision < 0 {
		return f
	}
	r, _ := strconv.ParseFloat(p.formatPlain(f), 64)
	return r
}

// fractionDigits returns the number of digits after the decimal point in the
// shortest representation of f.
func fractionDigits(f float64) int {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
