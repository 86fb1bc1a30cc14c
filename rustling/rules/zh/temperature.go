package zh

import (
	"github.com/thadguidry/rustling-go/rustling/rules"
	"github.com/thadguidry/rustling-go/rustling/values"
)

// buildTemperatureRules registers the temperature grammar (rules_temperature):
// a bare number reads as a latent temperature until a unit word or 零下
// (below zero) promotes/negates it.
func buildTemperatureRules(b *rules.RuleSetBuilder) {
	b.Add(rules.Rule1("number as temp", rules.P(rules.IsNumber(nil)),
		func(m []rules.SlotMatch) (values.Value, error) {
			n, _ := numberOf(m[0].Value)
			return values.TemperatureValue{Value: n, Latent: true}, nil
		}))

	unitSuffix := func(id, pattern string, unit values.TemperatureUnit) {
		b.Add(rules.Rule2(id,
			rules.P(rules.IsTemperature()),
			rules.T(rules.NewTerminal(pattern)),
			func(m []rules.SlotMatch) (values.Value, error) {
				t := m[0].Value.(values.TemperatureValue)
				return values.TemperatureValue{Value: t.Value, Unit: unit}, nil
			}))
	}
	unitSuffix("<latent temp> degrees", `度|°`, values.TemperatureUnitDegree)
	unitSuffix("<temp> Celsius", `(?:摄|攝)氏(?:°|度)|°[cC]`, values.TemperatureUnitCelsius)
	unitSuffix("<temp> Fahrenheit", `(?:华|華)氏(?:°|度)|°[fF]`, values.TemperatureUnitFahrenheit)

	unitPrefix := func(id, pattern string, unit values.TemperatureUnit) {
		b.Add(rules.Rule3(id,
			rules.T(rules.NewTerminal(pattern)),
			rules.P(rules.IsTemperature()),
			rules.T(rules.NewTerminal(`度|°`)),
			func(m []rules.SlotMatch) (values.Value, error) {
				t := m[1].Value.(values.TemperatureValue)
				return values.TemperatureValue{Value: t.Value, Unit: unit}, nil
			}))
	}
	unitPrefix("Celsius <temp>", `(?:摄|攝)氏`, values.TemperatureUnitCelsius)
	unitPrefix("Fahrenheit <temp>", `(?:华|華)氏`, values.TemperatureUnitFahrenheit)

	b.Add(rules.Rule2("below <temp>",
		rules.T(rules.NewTerminal(`零下`)),
		rules.P(rules.IsTemperature()),
		func(m []rules.SlotMatch) (values.Value, error) {
			t := m[1].Value.(values.TemperatureValue)
			return values.TemperatureValue{Value: -1 * t.Value, Unit: t.Unit, Latent: t.Latent}, nil
		}))
}
