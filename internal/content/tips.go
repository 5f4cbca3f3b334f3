package content

import (
	"strings"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

// Languages the tip pools cover.
const (
	LangPT = "pt"
	LangES = "es"
	LangEN = "en"
)

// NormalizeLanguage maps a raw language tag onto a supported pool language,
// defaulting to English.
func NormalizeLanguage(raw string) string {
	lang := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(lang, LangPT):
		return LangPT
	case strings.HasPrefix(lang, LangES):
		return LangES
	default:
		return LangEN
	}
}

// tips holds the static per-currency, per-language tip pools.
var tips = map[model.CurrencyCode]map[string][]string{
	model.BRL: {
		LangPT: {
			"💡 Compare taxas entre bancos antes de trocar reais.",
			"📊 O real pode se desvalorizar em anos eleitorais.",
		},
		LangES: {
			"💡 Compara tasas entre bancos antes de cambiar reales.",
			"📊 El real puede depreciarse en años electorales.",
		},
		LangEN: {
			"💡 Compare exchange rates before converting BRL.",
			"📊 BRL may weaken during election years.",
		},
	},
	model.USD: {
		LangPT: {
			"💵 O dólar é aceito em muitos países.",
			"📈 Taxas de juros nos EUA afetam o valor global.",
		},
		LangES: {
			"💵 El dólar es aceptado en muchos países.",
			"📈 Las tasas de interés en EE.UU. afectan el valor global.",
		},
		LangEN: {
			"💵 The dollar is accepted worldwide.",
			"📈 U.S. interest rates influence global value.",
		},
	},
	model.EUR: {
		LangPT: {
			"💶 O euro é estável, mas sensível às decisões do BCE.",
			"🌍 É a segunda moeda mais usada em reservas.",
		},
		LangES: {
			"💶 El euro es estable, pero sensible al BCE.",
			"🌍 Es la segunda moneda más usada en reservas.",
		},
		LangEN: {
			"💶 The euro is stable but sensitive to ECB decisions.",
			"🌍 It's the second most used currency globally.",
		},
	},
}
